// internal/services/post_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

// PostService serves the deco-tips blog: published posts for visitors,
// full CRUD for the back-office.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

type PostRequest struct {
	Title     string `json:"title" binding:"required" validate:"required,min=1,max=255"`
	Excerpt   string `json:"excerpt" validate:"max=500"`
	Body      string `json:"body"`
	Cover     string `json:"cover" validate:"max=500"`
	Published *bool  `json:"published"`
}

func (s *PostService) ListPublished(ctx context.Context, page, limit int) ([]models.Post, utils.Pagination, error) {
	var posts []models.Post
	var total int64

	db := s.db.WithContext(ctx).Model(&models.Post{}).Where("published = ?", true)
	if err := db.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count posts: %w", err)
	}

	err := utils.ApplyPagination(db.Order("published_at DESC"), page, limit).
		Select("id", "slug", "title", "excerpt", "cover", "published", "published_at", "created_at", "updated_at").
		Find(&posts).Error
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, utils.NewPagination(page, limit, total), nil
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrNotFound
	}

	var post models.Post
	err := s.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &post, nil
}

func (s *PostService) ListAll(ctx context.Context, page, limit int) ([]models.Post, utils.Pagination, error) {
	var posts []models.Post
	var total int64

	db := s.db.WithContext(ctx).Model(&models.Post{})
	if err := db.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count posts: %w", err)
	}

	err := utils.ApplyPagination(db.Order("created_at DESC"), page, limit).Find(&posts).Error
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, utils.NewPagination(page, limit, total), nil
}

func (s *PostService) Create(ctx context.Context, req *PostRequest) (*models.Post, error) {
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	post := &models.Post{
		Title:   strings.TrimSpace(req.Title),
		Excerpt: req.Excerpt,
		Body:    req.Body,
		Cover:   req.Cover,
	}
	if req.Published != nil && *req.Published {
		now := time.Now()
		post.Published = true
		post.PublishedAt = &now
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		used, err := usedPostSlugs(tx)
		if err != nil {
			return err
		}
		base := utils.Slugify(post.Title)
		if base == "" {
			base = utils.NewRecordID()
		}
		post.Slug = utils.UniqueSlug(base, used)
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *PostService) Update(ctx context.Context, id string, req *PostRequest) (*models.Post, error) {
	if !utils.IsRecordID(id) {
		return nil, NewValidationError("id")
	}
	var post models.Post
	err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	updates := map[string]interface{}{
		"title":   strings.TrimSpace(req.Title),
		"excerpt": req.Excerpt,
		"body":    req.Body,
		"cover":   req.Cover,
	}
	if req.Published != nil {
		updates["published"] = *req.Published
		if *req.Published && post.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if strings.TrimSpace(req.Title) != post.Title {
			used, err := usedPostSlugs(tx)
			if err != nil {
				return err
			}
			assigned := utils.AssignSlugs([]utils.SlugRecord{
				{ID: post.ID, Name: req.Title, Current: post.Slug},
			}, used)
			updates["slug"] = assigned[post.ID]
		}
		return tx.Model(&post).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if !utils.IsRecordID(id) {
		return NewValidationError("id")
	}
	result := s.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func usedPostSlugs(tx *gorm.DB) (map[string]bool, error) {
	var slugs []string
	if err := tx.Model(&models.Post{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("failed to load post slugs: %w", err)
	}
	used := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		used[s] = true
	}
	return used, nil
}
