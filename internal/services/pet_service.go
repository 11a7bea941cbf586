package services

import (
	"shelter/internal/models"
	"shelter/internal/repositories"
)

// PetService handles business logic related to pets.
type PetService struct {
	repo repositories.PetRepository
}

// NewPetService creates a new PetService.
func NewPetService(repo repositories.PetRepository) *PetService {
	return &PetService{
		repo: repo,
	}
}

// GetAllPets retrieves all pets.
func (s *PetService) GetAllPets() ([]models.Pet, error) {
	return s.repo.GetAll()
}

// GetPetByID retrieves a single pet by its ID.
func (s *PetService) GetPetByID(id uint) (*models.Pet, error) {
	return s.repo.GetByID(id)
}

// CreatePet creates a new pet. An empty photo URL falls back to the
// placeholder image, and new pets start out available.
func (s *PetService) CreatePet(pet *models.Pet) error {
	if pet.PhotoURL == "" {
		pet.PhotoURL = models.DefaultPetPhotoURL
	}
	pet.Available = true
	return s.repo.Create(pet)
}

// UpdatePet updates an existing pet.
func (s *PetService) UpdatePet(pet *models.Pet) error {
	if pet.PhotoURL == "" {
		pet.PhotoURL = models.DefaultPetPhotoURL
	}
	return s.repo.Update(pet)
}

// DeletePet deletes a pet by its ID.
func (s *PetService) DeletePet(id uint) error {
	return s.repo.Delete(id)
}
