package repository

import (
	"github.com/lshigami/Mockingbird/internal/model"
	"gorm.io/gorm"
)

// AnswerRepository is append-only insert: a persisted answer is never
// overwritten by a later submission.
type AnswerRepository interface {
	Create(tx *gorm.DB, answer *model.Answer) error
	ExistsForQuestion(questionID uint) (bool, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(tx *gorm.DB, answer *model.Answer) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(answer).Error
}

func (r *answerRepository) ExistsForQuestion(questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("question_id = ?", questionID).Count(&count).Error
	return count > 0, err
}
