package repository

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string, category *domain.Category) ([]*domain.Task, error) {
	var tasks []*domain.Task

	query := r.db.Where("user_id = ?", userID)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindIncomplete(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND completed = ?", userID, false).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) UpdatePriority(id string, priority domain.Priority) error {
	return r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"priority":   priority,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormTaskRepository) SetCompleted(id string, completed bool) error {
	return r.db.Model(&domain.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed":  completed,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}
