package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type feedbackGormRepository struct {
	db db.Database
}

func NewFeedbackGormRepository(database db.Database) FeedbackRepository {
	return &feedbackGormRepository{db: database}
}

func (r *feedbackGormRepository) Create(feedback *entities.Feedback) error {
	return r.db.GetDB().Create(feedback).Error
}

func (r *feedbackGormRepository) GetAll() ([]entities.Feedback, error) {
	var feedback []entities.Feedback
	err := r.db.GetDB().Find(&feedback).Error
	return feedback, err
}

func (r *feedbackGormRepository) GetByUserID(userID uint) ([]entities.Feedback, error) {
	var feedback []entities.Feedback
	err := r.db.GetDB().Where("user_id = ?", userID).Find(&feedback).Error
	return feedback, err
}
