package repositories

import (
	"shelter/internal/models"
)

// TagRepository defines the interface for tag data access. GetByName
// backs both the uniqueness check and the name resolution on post
// forms, so a miss must wrap ErrNotFound.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	Delete(id uint) error
}
