package repositories

import (
	"shelter/internal/models"
)

// PostRepository defines the interface for post data access. Tag
// associations are manipulated through ReplaceTags so an edit swaps
// the whole set in one call.
type PostRepository interface {
	GetAll() ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
}
