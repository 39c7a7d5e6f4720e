package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"floodwatch/internal/cache"
	apperr "floodwatch/internal/errors"
	"floodwatch/internal/logger"
	"floodwatch/internal/model"
	"floodwatch/internal/objectstore"
	"floodwatch/internal/repository"
)

const (
	postImagePrefix = "posts"
	postCacheTTL    = 5 * time.Minute
)

// PostInput carries a new post. Image is required.
type PostInput struct {
	Title        string
	Organization string
	Description  string
	Image        *objectstore.Upload
}

// PostFilter narrows a post listing. Zero values match everything.
type PostFilter struct {
	Organization string
	Search       string
	Limit        int
}

// PostService manages community posts and their images.
type PostService interface {
	Create(ctx context.Context, in PostInput) (*model.Post, error)
	// List returns posts newest first.
	List(ctx context.Context, f PostFilter) ([]model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	// Update replaces title and description; both are required.
	Update(ctx context.Context, id, title, description string) (*model.Post, error)
	// Delete removes the post and its image. A missing post is not an error;
	// fallbackKey names the image to remove when the record is already gone.
	Delete(ctx context.Context, id, fallbackKey string) error
}

type postService struct {
	repo  repository.PostRepository
	store objectstore.Store
	cache *cache.Client
	now   Clock
}

// NewPostService creates a new post service. cache may be nil.
func NewPostService(repo repository.PostRepository, store objectstore.Store, cache *cache.Client, clock Clock) PostService {
	if clock == nil {
		clock = systemClock
	}
	return &postService{repo: repo, store: store, cache: cache, now: clock}
}

func (s *postService) cacheKey(id string) string {
	return "post:" + id
}

func (s *postService) Create(ctx context.Context, in PostInput) (*model.Post, error) {
	title, err := requiredText("title", in.Title)
	if err != nil {
		return nil, err
	}
	org, err := requiredText("organization", in.Organization)
	if err != nil {
		return nil, err
	}
	desc, err := requiredText("description", in.Description)
	if err != nil {
		return nil, err
	}
	if in.Image == nil {
		return nil, apperr.BadRequest("image is required")
	}

	key := objectstore.NewKey(postImagePrefix, in.Image.Ext)
	url, err := s.store.Put(ctx, key, in.Image.ContentType, in.Image.Reader())
	if err != nil {
		return nil, fmt.Errorf("upload post image: %w", err)
	}

	post := &model.Post{
		Title:        title,
		Organization: org,
		Description:  desc,
		ImageURL:     url,
		ImageKey:     key,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.Warn("failed to remove image of unsaved post", "key", key, "error", derr)
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, f PostFilter) ([]model.Post, error) {
	q := repository.Query{
		Orders: []repository.Order{repository.Desc("created_at")},
		Limit:  clampLimit(f.Limit),
	}
	if org := strings.TrimSpace(f.Organization); org != "" {
		q = q.Where(repository.Eq("organization", org))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where(repository.AnyContains(search, "title", "description"))
	}
	return s.repo.List(ctx, q)
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if post, err = load(post, err, "post"); err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, postCacheTTL)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id, title, description string) (*model.Post, error) {
	title, err := requiredText("title", title)
	if err != nil {
		return nil, err
	}
	description, err = requiredText("description", description)
	if err != nil {
		return nil, err
	}
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title, post.Description = title, description
	if err := s.repo.Update(ctx, post, "title", "description"); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id, fallbackKey string) error {
	if fallbackKey != "" {
		if fallbackKey = path.Clean(fallbackKey); !strings.HasPrefix(fallbackKey, postImagePrefix+"/") {
			return apperr.BadRequest("invalid image key")
		}
	}
	key := fallbackKey
	post, err := s.repo.FindByID(ctx, id)
	switch {
	case err == nil:
		if post.ImageKey != "" {
			key = post.ImageKey
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	case errors.Is(err, repository.ErrNotFound):
	default:
		return fmt.Errorf("load post: %w", err)
	}

	if key == "" {
		return nil
	}
	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, objectstore.ErrInvalidKey) {
			return apperr.BadRequest("invalid image key")
		}
		return fmt.Errorf("delete post image: %w", err)
	}
	return nil
}
