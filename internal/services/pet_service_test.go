package services_test

import (
	"errors"
	"fmt"
	"testing"

	"shelter/internal/models"
	"shelter/internal/repositories"
	"shelter/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPetRepository is a mock implementation of repositories.PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) GetAll() ([]models.Pet, error) {
	args := m.Called()
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockPetRepository) GetByID(id uint) (*models.Pet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetRepository) Create(pet *models.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetRepository) Update(pet *models.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPetService_CreatePetDefaultsPhotoURL(t *testing.T) {
	mockRepo := new(MockPetRepository)
	service := services.NewPetService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Pet) bool {
		return p.PhotoURL == models.DefaultPetPhotoURL && p.Available
	})).Return(nil).Once()

	err := service.CreatePet(&models.Pet{Name: "Rex", Species: "dog"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPetService_CreatePetKeepsSubmittedPhotoURL(t *testing.T) {
	mockRepo := new(MockPetRepository)
	service := services.NewPetService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Pet) bool {
		return p.PhotoURL == "https://example.com/rex.png"
	})).Return(nil).Once()

	err := service.CreatePet(&models.Pet{Name: "Rex", Species: "dog", PhotoURL: "https://example.com/rex.png"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPetService_GetPetByID(t *testing.T) {
	mockRepo := new(MockPetRepository)
	service := services.NewPetService(mockRepo)

	expectedPet := &models.Pet{ID: 1, Name: "Rex", Species: "dog", Available: true}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedPet, nil).Once()
	pet, err := service.GetPetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedPet, pet)
	mockRepo.AssertExpectations(t)

	// Test pet not found
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("pet with ID 99: %w", repositories.ErrNotFound)).Once()
	pet, err = service.GetPetByID(99)
	assert.Error(t, err)
	assert.Nil(t, pet)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestPetService_GetAllPets(t *testing.T) {
	mockRepo := new(MockPetRepository)
	service := services.NewPetService(mockRepo)

	expectedPets := []models.Pet{
		{ID: 1, Name: "Rex", Species: "dog", Available: true},
		{ID: 2, Name: "Whiskers", Species: "cat", Available: true},
	}

	mockRepo.On("GetAll").Return(expectedPets, nil).Once()

	pets, err := service.GetAllPets()

	assert.NoError(t, err)
	assert.Len(t, pets, 2)
	assert.Equal(t, expectedPets, pets)
	mockRepo.AssertExpectations(t)
}

func TestPetService_DeletePet(t *testing.T) {
	mockRepo := new(MockPetRepository)
	service := services.NewPetService(mockRepo)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	err := service.DeletePet(1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", uint(99)).Return(fmt.Errorf("pet with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.DeletePet(99)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	mockRepo.AssertExpectations(t)
}
