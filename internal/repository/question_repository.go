package repository

import (
	"errors"

	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository is append-only: questions are generated with their
// interview and never updated or deleted afterwards.
type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question", id)
		}
		return nil, err
	}
	return &question, nil
}
