package services

import (
	"errors"

	"shelter/internal/models"
	"shelter/internal/repositories"
)

// TagService handles business logic related to tags, most of it the
// case-sensitive name uniqueness rule.
type TagService struct {
	repo repositories.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(repo repositories.TagRepository) *TagService {
	return &TagService{
		repo: repo,
	}
}

// GetAllTags retrieves all tags.
func (s *TagService) GetAllTags() ([]models.Tag, error) {
	return s.repo.GetAll()
}

// GetTagByID retrieves a single tag, with its posts, by ID.
func (s *TagService) GetTagByID(id uint) (*models.Tag, error) {
	return s.repo.GetByID(id)
}

// CreateTag creates a new tag. A name matching an existing tag fails
// with ErrTagExists and inserts nothing.
func (s *TagService) CreateTag(tag *models.Tag) error {
	if err := s.checkNameFree(tag.Name); err != nil {
		return err
	}
	return s.repo.Create(tag)
}

// UpdateTag renames a tag. Keeping the current name is allowed; taking
// another tag's name is not.
func (s *TagService) UpdateTag(id uint, name string) (*models.Tag, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != tag.Name {
		if err := s.checkNameFree(name); err != nil {
			return nil, err
		}
	}
	tag.Name = name
	if err := s.repo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag deletes a tag by its ID. Posts that carried the tag keep
// existing without it.
func (s *TagService) DeleteTag(id uint) error {
	return s.repo.Delete(id)
}

func (s *TagService) checkNameFree(name string) error {
	_, err := s.repo.GetByName(name)
	if err == nil {
		return ErrTagExists
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}
