package repositories

import (
	"errors"
	"fmt"

	"shelter/internal/models"

	"gorm.io/gorm"
)

// GORMPetRepository is a GORM implementation of PetRepository.
type GORMPetRepository struct {
	db *gorm.DB
}

// NewGORMPetRepository creates a new instance of GORMPetRepository.
func NewGORMPetRepository(db *gorm.DB) *GORMPetRepository {
	return &GORMPetRepository{
		db: db,
	}
}

// GetAll retrieves all pets from the database.
func (r *GORMPetRepository) GetAll() ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all pets: %w", err)
	}
	return pets, nil
}

// GetByID retrieves a single pet by its ID from the database.
func (r *GORMPetRepository) GetByID(id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pet with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pet by ID %d: %w", id, err)
	}
	return &pet, nil
}

// Create creates a new pet in the database.
func (r *GORMPetRepository) Create(pet *models.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// Update updates an existing pet in the database.
func (r *GORMPetRepository) Update(pet *models.Pet) error {
	res := r.db.Save(pet) // Save overwrites all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update pet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pet with ID %d: %w", pet.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a pet by its ID from the database.
func (r *GORMPetRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Pet{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pet with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
