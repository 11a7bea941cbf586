package repositories

import (
	"shelter/internal/models"
)

// PetRepository defines the interface for pet data access.
type PetRepository interface {
	GetAll() ([]models.Pet, error)
	GetByID(id uint) (*models.Pet, error)
	Create(pet *models.Pet) error
	Update(pet *models.Pet) error
	Delete(id uint) error
}
