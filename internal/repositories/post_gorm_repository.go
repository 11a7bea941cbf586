package repositories

import (
	"errors"
	"fmt"

	"shelter/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// GetAll retrieves all posts with their tags from the database.
func (r *GORMPostRepository) GetAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Preload("Tags").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a single post with its owner and tags.
func (r *GORMPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by ID %d: %w", id, err)
	}
	return &post, nil
}

// Create creates a new post. Any tags already set on the post are
// linked through the join table.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update overwrites the post's own columns. Associations are left
// alone; callers use ReplaceTags for those.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Omit(clause.Associations).Save(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", post.ID, ErrNotFound)
	}
	return nil
}

// ReplaceTags swaps the post's entire tag set for the given one.
func (r *GORMPostRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	if err := r.db.Model(post).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("failed to replace tags for post %d: %w", post.ID, err)
	}
	return nil
}

// Delete removes a post and its join-table rows. The tags themselves
// are untouched.
func (r *GORMPostRepository) Delete(id uint) error {
	post, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Model(post).Association("Tags").Clear(); err != nil {
		return fmt.Errorf("failed to clear tags for post %d: %w", id, err)
	}
	if err := r.db.Delete(&models.Post{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
