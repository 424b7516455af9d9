package repository

import (
	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"gorm.io/gorm"
)

// ResultRepository - граница записи результатов расчёта.
// Движок знает только то, что получает обратно непрозрачный идентификатор.
type ResultRepository interface {
	SaveInput(input *models.UserInput) (*models.UserInput, error)
	SaveResult(result *models.MacroResult) (*models.MacroResult, error)
	FindByID(id string) (*models.MacroResult, error)
	FindPage(page, limit int) ([]*models.MacroResult, int64, error)
	Delete(id string) (int64, error)
}

type resultRepo struct {
	db *gorm.DB
}

func NewResultRepo(db *gorm.DB) ResultRepository {
	return &resultRepo{db: db}
}

// SaveInput сохраняет анкету вместе с недельным расписанием (одной единицей)
func (r *resultRepo) SaveInput(input *models.UserInput) (*models.UserInput, error) {
	err := r.db.Create(input).Error
	return input, err
}

func (r *resultRepo) SaveResult(result *models.MacroResult) (*models.MacroResult, error) {
	err := r.db.Create(result).Error
	return result, err
}

func (r *resultRepo) FindByID(id string) (*models.MacroResult, error) {
	var result models.MacroResult
	err := r.db.Preload("UserInput.Workouts").Preload("UserInput").Where("id = ?", id).First(&result).Error
	return &result, err
}

// FindPage - страница результатов для админки, новые сверху
func (r *resultRepo) FindPage(page, limit int) ([]*models.MacroResult, int64, error) {
	var total int64
	if err := r.db.Model(&models.MacroResult{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*models.MacroResult
	err := r.db.Preload("UserInput.Workouts").Preload("UserInput").
		Order("calculated_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error
	return results, total, err
}

// Delete удаляет только сам результат. Анкета с расписанием остаётся:
// история ввода и история расчётов живут независимо.
func (r *resultRepo) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.MacroResult{})
	return result.RowsAffected, result.Error
}
