package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(tx *gorm.DB, interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithDetails(id uint) (*model.Interview, error)
	FindAllByUser(userID uint, status *string) ([]model.Interview, error)
	// UpdateGuarded applies updates iff the stored version still matches
	// interview.Version, bumping the version. A stale write reports a
	// conflict and changes nothing. Pass tx to run inside a transaction,
	// nil otherwise.
	UpdateGuarded(tx *gorm.DB, interview *model.Interview, updates map[string]interface{}) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(tx *gorm.DB, interview *model.Interview) error {
	if tx == nil {
		tx = r.db
	}
	// GORM creates associated Questions when interview.Questions is populated.
	return tx.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("interview", id)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithDetails(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index ASC")
		}).
		Preload("Answers").
		First(&interview, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("interview", id)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint, status *string) ([]model.Interview, error) {
	var interviews []model.Interview
	query := r.db.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("start_time DESC").Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// serializedColumns are stored as JSON text. Map-based updates bypass gorm's
// field serializer, so their values are marshalled here before the write.
var serializedColumns = map[string]bool{
	"voice_metrics":     true,
	"facial_metrics":    true,
	"improvement_areas": true,
}

func (r *interviewRepository) UpdateGuarded(tx *gorm.DB, interview *model.Interview, updates map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	for column, value := range updates {
		if !serializedColumns[column] {
			continue
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", column, err)
		}
		updates[column] = string(data)
	}
	updates["version"] = interview.Version + 1
	res := tx.Model(&model.Interview{}).
		Where("id = ? AND version = ?", interview.ID, interview.Version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Conflict("interview %d was modified by a concurrent operation", interview.ID)
	}
	interview.Version++
	return nil
}
