package services

import (
	"shelter/internal/models"
	"shelter/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo     repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		repo:     repo,
		postRepo: postRepo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user, with their posts, by ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a new user.
func (s *UserService) CreateUser(user *models.User) error {
	return s.repo.Create(user)
}

// UpdateUser overwrites a user's editable fields. A nil ImageURL
// clears the stored value.
func (s *UserService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

// DeleteUser deletes a user together with their posts. Each post
// delete clears its own tag associations; tags survive.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	for _, post := range user.Posts {
		if err := s.postRepo.Delete(post.ID); err != nil {
			return err
		}
	}
	return s.repo.Delete(id)
}
