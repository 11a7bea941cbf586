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

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetAll() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	args := m.Called(post, tags)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func newPostServiceWithMocks() (*services.PostService, *MockPostRepository, *MockUserRepository, *MockTagRepository) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	tagRepo := new(MockTagRepository)
	return services.NewPostService(postRepo, userRepo, tagRepo), postRepo, userRepo, tagRepo
}

func TestPostService_CreatePostResolvesTags(t *testing.T) {
	service, postRepo, userRepo, tagRepo := newPostServiceWithMocks()

	user := &models.User{ID: 7, FirstName: "Jane", LastName: "Doe"}
	friendly := &models.Tag{ID: 1, Name: "friendly"}

	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	tagRepo.On("GetByName", "friendly").Return(friendly, nil).Once()
	postRepo.On("Create", mock.MatchedBy(func(p *models.Post) bool {
		return p.UserID == 7 && p.Title == "Hello" && len(p.Tags) == 1 && p.Tags[0].Name == "friendly"
	})).Return(nil).Once()

	post, err := service.CreatePost(7, "Hello", "World", []string{"friendly"})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), post.UserID)
	assert.Len(t, post.Tags, 1)
	postRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestPostService_CreatePostUnknownTagFails(t *testing.T) {
	service, postRepo, userRepo, tagRepo := newPostServiceWithMocks()

	user := &models.User{ID: 7, FirstName: "Jane", LastName: "Doe"}
	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	tagRepo.On("GetByName", "nosuch").Return(nil, notFoundErr("nosuch")).Once()

	post, err := service.CreatePost(7, "Hello", "World", []string{"nosuch"})

	assert.Nil(t, post)
	var unknown *services.UnknownTagError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nosuch", unknown.Name)
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestPostService_CreatePostMissingUser(t *testing.T) {
	service, postRepo, userRepo, _ := newPostServiceWithMocks()

	userRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("user with ID 99: %w", repositories.ErrNotFound)).Once()

	post, err := service.CreatePost(99, "Hello", "World", nil)

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestPostService_UpdatePostReplacesTagSet(t *testing.T) {
	service, postRepo, _, tagRepo := newPostServiceWithMocks()

	existing := &models.Post{ID: 3, Title: "Old", Content: "Old", UserID: 7, Tags: []models.Tag{{ID: 1, Name: "friendly"}}}
	urgent := &models.Tag{ID: 2, Name: "urgent"}

	postRepo.On("GetByID", uint(3)).Return(existing, nil).Once()
	tagRepo.On("GetByName", "urgent").Return(urgent, nil).Once()
	postRepo.On("Update", mock.MatchedBy(func(p *models.Post) bool {
		return p.ID == 3 && p.Title == "New" && p.Content == "Newer"
	})).Return(nil).Once()
	postRepo.On("ReplaceTags", mock.Anything, []models.Tag{*urgent}).Return(nil).Once()

	post, err := service.UpdatePost(3, "New", "Newer", []string{"urgent"})

	assert.NoError(t, err)
	assert.Len(t, post.Tags, 1)
	assert.Equal(t, "urgent", post.Tags[0].Name)
	postRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestPostService_DeletePostReturnsOwner(t *testing.T) {
	service, postRepo, _, _ := newPostServiceWithMocks()

	existing := &models.Post{ID: 3, Title: "Hello", Content: "World", UserID: 7}
	postRepo.On("GetByID", uint(3)).Return(existing, nil).Once()
	postRepo.On("Delete", uint(3)).Return(nil).Once()

	ownerID, err := service.DeletePost(3)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), ownerID)
	postRepo.AssertExpectations(t)
}

func TestUserService_DeleteUserRemovesOwnedPosts(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, postRepo)

	user := &models.User{ID: 7, FirstName: "Jane", LastName: "Doe", Posts: []models.Post{{ID: 3, UserID: 7}, {ID: 4, UserID: 7}}}
	userRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	postRepo.On("Delete", uint(3)).Return(nil).Once()
	postRepo.On("Delete", uint(4)).Return(nil).Once()
	userRepo.On("Delete", uint(7)).Return(nil).Once()

	err := service.DeleteUser(7)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}
