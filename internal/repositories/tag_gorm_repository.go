package repositories

import (
	"errors"
	"fmt"

	"shelter/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{
		db: db,
	}
}

// GetAll retrieves all tags from the database.
func (r *GORMTagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a single tag with its posts.
func (r *GORMTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Preload("Posts").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by ID %d: %w", id, err)
	}
	return &tag, nil
}

// GetByName retrieves a tag by its exact name. Matching is
// case-sensitive.
func (r *GORMTagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with name %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by name %q: %w", name, err)
	}
	return &tag, nil
}

// Create creates a new tag in the database.
func (r *GORMTagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// Update updates an existing tag in the database.
func (r *GORMTagRepository) Update(tag *models.Tag) error {
	res := r.db.Omit(clause.Associations).Save(tag)
	if res.Error != nil {
		return fmt.Errorf("failed to update tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tag with ID %d: %w", tag.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a tag and its join-table rows.
func (r *GORMTagRepository) Delete(id uint) error {
	tag, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Model(tag).Association("Posts").Clear(); err != nil {
		return fmt.Errorf("failed to clear posts for tag %d: %w", id, err)
	}
	if err := r.db.Delete(&models.Tag{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
