package repository

import (
	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"gorm.io/gorm"
)

// WorkoutTypeRepository - интерфейс каталога типов тренировок
type WorkoutTypeRepository interface {
	FindAll() ([]*models.WorkoutType, error)
	FindActive() ([]*models.WorkoutType, error)
	FindByID(id string) (*models.WorkoutType, error)
	FindByKey(key string) (*models.WorkoutType, error)
	Create(wt *models.WorkoutType) (*models.WorkoutType, error)
	Update(wt *models.WorkoutType) error
	Delete(id string) error
	CreateBatch(items []*models.WorkoutType) error
	Count() (int64, error)
}

type workoutTypeRepo struct {
	db *gorm.DB
}

func NewWorkoutTypeRepo(db *gorm.DB) WorkoutTypeRepository {
	return &workoutTypeRepo{db: db}
}

func (r *workoutTypeRepo) FindAll() ([]*models.WorkoutType, error) {
	var types []*models.WorkoutType
	err := r.db.Order("sort_order asc, name asc").Find(&types).Error
	return types, err
}

func (r *workoutTypeRepo) FindActive() ([]*models.WorkoutType, error) {
	var types []*models.WorkoutType
	err := r.db.Where("is_active = ?", true).Order("sort_order asc, name asc").Find(&types).Error
	return types, err
}

func (r *workoutTypeRepo) FindByID(id string) (*models.WorkoutType, error) {
	var wt models.WorkoutType
	err := r.db.Where("id = ?", id).First(&wt).Error
	return &wt, err
}

func (r *workoutTypeRepo) FindByKey(key string) (*models.WorkoutType, error) {
	var wt models.WorkoutType
	err := r.db.Where("key = ?", key).First(&wt).Error
	return &wt, err
}

func (r *workoutTypeRepo) Create(wt *models.WorkoutType) (*models.WorkoutType, error) {
	err := r.db.Create(wt).Error
	return wt, err
}

func (r *workoutTypeRepo) Update(wt *models.WorkoutType) error {
	return r.db.Save(wt).Error
}

func (r *workoutTypeRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.WorkoutType{}).Error
}

func (r *workoutTypeRepo) CreateBatch(items []*models.WorkoutType) error {
	return r.db.Create(items).Error
}

func (r *workoutTypeRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkoutType{}).Count(&count).Error
	return count, err
}
