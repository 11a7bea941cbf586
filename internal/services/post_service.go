package services

import (
	"errors"

	"shelter/internal/models"
	"shelter/internal/repositories"
)

// PostService handles business logic related to posts, including
// resolving submitted tag names against the existing tags.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, tagRepo repositories.TagRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
	}
}

// GetAllPosts retrieves all posts.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostByID retrieves a single post, with its owner and tags, by ID.
func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a post owned by the given user, linked to the
// tags named in tagNames. Every name must match an existing tag; an
// unknown name fails the whole operation with an UnknownTagError.
func (s *PostService) CreatePost(userID uint, title, content string, tagNames []string) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(tagNames)
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
		Tags:    tags,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites a post's title and content and replaces its
// entire tag set with the tags named in tagNames.
func (s *PostService) UpdatePost(id uint, title, content string, tagNames []string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(tagNames)
	if err != nil {
		return nil, err
	}
	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.ReplaceTags(post, tags); err != nil {
		return nil, err
	}
	post.Tags = tags
	return post, nil
}

// DeletePost removes a post and its tag associations, returning the
// owner's ID so the caller can redirect back to them.
func (s *PostService) DeletePost(id uint) (uint, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return 0, err
	}
	return post.UserID, nil
}

func (s *PostService) resolveTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, &UnknownTagError{Name: name}
			}
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
