package repository

import (
	"context"

	"gorm.io/gorm"

	"floodwatch/internal/model"
)

// RequestRepository defines citizen request persistence operations.
type RequestRepository interface {
	CRUD[model.Request]
	// AppendNote stores note and bumps the request's updated_at in one transaction.
	AppendNote(ctx context.Context, note *model.RequestNote) error
}

type requestRepository struct {
	*Table[model.Request]
	db *gorm.DB
}

// NewRequestRepository creates a new request repository. Reads preload notes oldest first.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	withNotes := func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Notes", func(p *gorm.DB) *gorm.DB {
			return p.Order("created_at ASC")
		})
	}
	return &requestRepository{
		Table: NewTable[model.Request](db, withNotes),
		db:    db,
	}
}

func (r *requestRepository) AppendNote(ctx context.Context, note *model.RequestNote) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Request{}).
			Where("id = ?", note.RequestID).
			Update("updated_at", note.CreatedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}

