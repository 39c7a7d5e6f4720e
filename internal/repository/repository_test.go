package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"floodwatch/internal/db"
	"floodwatch/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gormDB, err := db.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

var base = time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)

func seedNotifications(t *testing.T, repo NotificationRepository) {
	t.Helper()
	ctx := context.Background()
	items := []model.Notification{
		{Title: "Drizzle", Severity: model.SeverityLow, AffectedRegions: []string{"Klang"}, Active: true, CreatedAt: base.Add(3 * time.Hour)},
		{Title: "Dam breach", Severity: model.SeverityCritical, AffectedRegions: []string{"Shah Alam", "Klang"}, Active: true, CreatedAt: base},
		{Title: "River rising", Severity: model.SeverityHigh, AffectedRegions: []string{"Kuantan"}, Active: true, CreatedAt: base.Add(time.Hour)},
		{Title: "Old warning", Severity: model.SeverityCritical, AffectedRegions: []string{"Klang"}, Active: false, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Dam breach 2", Severity: model.SeverityCritical, AffectedRegions: []string{"Kuantan"}, Active: true, CreatedAt: base.Add(4 * time.Hour)},
	}
	for i := range items {
		require.NoError(t, repo.Create(ctx, &items[i]))
	}
}

func titles(ns []model.Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Title
	}
	return out
}

func TestQuery_RankedSeverityThenRecency(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	seedNotifications(t, repo)

	got, err := repo.List(context.Background(), Query{
		Filters: []Filter{Eq("active", true)},
		Orders: []Order{
			Ranked("severity", "critical", "high", "medium", "low"),
			Desc("created_at"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dam breach 2", "Dam breach", "River rising", "Drizzle"}, titles(got))
}

func TestQuery_HasRegion(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	seedNotifications(t, repo)

	got, err := repo.List(context.Background(), Query{
		Filters: []Filter{Has("affected_regions", "Klang"), Eq("active", true)},
		Orders:  []Order{Desc("created_at")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Drizzle", "Dam breach"}, titles(got))
	assert.Equal(t, []string{"Shah Alam", "Klang"}, got[1].AffectedRegions)
}

func TestQuery_ContainsAndLimit(t *testing.T) {
	repo := NewRequestRepository(newTestDB(t))
	ctx := context.Background()
	for i, r := range []model.Request{
		{UserEmail: "a@x.io", UserName: "Aisha", Details: "Need sandbags", Region: "Shah Alam", Status: model.RequestStatusPending},
		{UserEmail: "b@x.io", UserName: "Ben", Details: "Boat rescue 100%", Region: "Klang", Status: model.RequestStatusResolved},
		{UserEmail: "a@x.io", UserName: "Aisha", Details: "Food supplies", Region: "klang utara", Status: model.RequestStatusPending},
	} {
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, &r))
	}

	byRegion, err := repo.List(ctx, Query{Filters: []Filter{Contains("region", "KLANG")}, Orders: []Order{Desc("created_at")}})
	require.NoError(t, err)
	require.Len(t, byRegion, 2)
	assert.Equal(t, "Food supplies", byRegion[0].Details)

	search, err := repo.List(ctx, Query{Filters: []Filter{AnyContains("sandbag", "user_name", "details", "region")}})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Need sandbags", search[0].Details)

	literal, err := repo.List(ctx, Query{Filters: []Filter{AnyContains("0%", "details")}})
	require.NoError(t, err)
	require.Len(t, literal, 1)

	noWildcard, err := repo.List(ctx, Query{Filters: []Filter{Contains("details", "_")}})
	require.NoError(t, err)
	assert.Empty(t, noWildcard)

	limited, err := repo.List(ctx, Query{Orders: []Order{Asc("created_at")}, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	n, err := repo.Count(ctx, Query{Filters: []Filter{Eq("status", model.RequestStatusPending)}, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTable_UpdateOnlyNamedColumns(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post := &model.Post{Title: "Relief centre", Organization: "Red Crescent", Description: "Open 24h", ImageKey: "posts/a.png"}
	require.NoError(t, repo.Create(ctx, post))
	require.NotEmpty(t, post.ID)

	patch := *post
	patch.Title = "Relief centre moved"
	patch.Organization = ""
	require.NoError(t, repo.Update(ctx, &patch, "title"))

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Relief centre moved", got.Title)
	assert.Equal(t, "Red Crescent", got.Organization)
	assert.Equal(t, "posts/a.png", got.ImageKey)
}

func TestTable_UpdateWritesZeroValues(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))
	ctx := context.Background()

	a := &model.Announcement{Title: "Shelter open", Active: true}
	require.NoError(t, repo.Create(ctx, a))
	a.Active = false
	require.NoError(t, repo.Update(ctx, a, "active"))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestTable_DeleteAndNotFound(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()

	c := &model.EmergencyContact{Name: "Bomba", Region: "Klang", Active: true}
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.First(ctx, Query{Filters: []Filter{Eq("name", "Bomba")}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "aisha", Email: "aisha@example.com", PasswordHash: "x", Role: model.RoleUser}))
	err := repo.Create(ctx, &model.User{Username: "aisha2", Email: "aisha@example.com", PasswordHash: "x", Role: model.RoleUser})
	assert.Error(t, err)

	u, err := repo.FindByEmail(ctx, "aisha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "aisha", u.Username)

	_, err = repo.FindByEmail(ctx, "AISHA@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err = repo.FindByUsername(ctx, "aisha")
	require.NoError(t, err)
	assert.Equal(t, "aisha@example.com", u.Email)

	u, err = repo.FindByEmailOrUsername(ctx, "aisha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "aisha", u.Username)
	u, err = repo.FindByEmailOrUsername(ctx, "aisha")
	require.NoError(t, err)
	assert.Equal(t, "aisha@example.com", u.Email)
}

func TestUserRepository_EmailsDifferingInCase(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "rahim", Email: "rahim@example.com", PasswordHash: "x", Role: model.RoleUser}))
	require.NoError(t, repo.Create(ctx, &model.User{Username: "Rahim", Email: "Rahim@example.com", PasswordHash: "x", Role: model.RoleUser}))

	u, err := repo.FindByEmail(ctx, "Rahim@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Rahim", u.Username)

	u, err = repo.FindByEmailOrUsername(ctx, "rahim")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", u.Email)
}

func TestRequestRepository_AppendNote(t *testing.T) {
	repo := NewRequestRepository(newTestDB(t))
	ctx := context.Background()

	r := &model.Request{UserEmail: "a@x.io", Status: model.RequestStatusPending, CreatedAt: base, UpdatedAt: base}
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.AppendNote(ctx, &model.RequestNote{RequestID: r.ID, Note: "team dispatched", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.AppendNote(ctx, &model.RequestNote{RequestID: r.ID, Note: "water receding", CreatedAt: base.Add(2 * time.Hour)}))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, got.Notes, 2)
	assert.Equal(t, "team dispatched", got.Notes[0].Note)
	assert.Equal(t, "water receding", got.Notes[1].Note)
	assert.NotEmpty(t, got.Notes[0].ID)
	assert.True(t, got.UpdatedAt.Equal(base.Add(2*time.Hour)))

	err = repo.AppendNote(ctx, &model.RequestNote{RequestID: "missing", Note: "x", CreatedAt: base})
	assert.ErrorIs(t, err, ErrNotFound)
}
