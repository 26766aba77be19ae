package store

import (
	"errors"
	"fmt"
	"storyapp/internal/models"

	"gorm.io/gorm"
)

// StoryStore owns CRUD access to story records. Listings are always
// newest-first. Delete exists as a repository capability but no route
// reaches it.
type StoryStore interface {
	Create(story *models.Story) error
	All(genre string) ([]models.Story, error)
	ByAuthor(authorID uint) ([]models.Story, error)
	ByID(id uint) (*models.Story, error)
	Update(id uint, updates map[string]interface{}) (*models.Story, error)
	Delete(id uint) error
	IncrementViews(id uint) error
	IncrementLikes(id uint) (int, error)
}

type gormStoryStore struct {
	db *gorm.DB
}

func NewStoryStore(db *gorm.DB) StoryStore {
	return &gormStoryStore{db: db}
}

func (s *gormStoryStore) Create(story *models.Story) error {
	if err := s.db.Create(story).Error; err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	return nil
}

func (s *gormStoryStore) All(genre string) ([]models.Story, error) {
	var stories []models.Story
	q := s.db.Order("created_at DESC")
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if err := q.Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}

func (s *gormStoryStore) ByAuthor(authorID uint) ([]models.Story, error) {
	var stories []models.Story
	if err := s.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("list stories by author %d: %w", authorID, err)
	}
	return stories, nil
}

func (s *gormStoryStore) ByID(id uint) (*models.Story, error) {
	var story models.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find story %d: %w", id, err)
	}
	return &story, nil
}

// Update applies only the supplied fields and returns the fresh record.
func (s *gormStoryStore) Update(id uint, updates map[string]interface{}) (*models.Story, error) {
	story, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(story).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update story %d: %w", id, err)
		}
	}
	return story, nil
}

func (s *gormStoryStore) Delete(id uint) error {
	res := s.db.Delete(&models.Story{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete story %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStoryStore) IncrementViews(id uint) error {
	res := s.db.Model(&models.Story{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment views for story %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStoryStore) IncrementLikes(id uint) (int, error) {
	res := s.db.Model(&models.Story{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, fmt.Errorf("increment likes for story %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	story, err := s.ByID(id)
	if err != nil {
		return 0, err
	}
	return story.Likes, nil
}
