package repository

import (
	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"gorm.io/gorm"
)

// ConfigRepository - интерфейс для коэффициентов расчёта
type ConfigRepository interface {
	FindAll() ([]*models.Configuration, error)
	FindAllOrdered() ([]*models.Configuration, error)
	FindByKey(key string) (*models.Configuration, error)
	UpdateValue(key string, value float64) (int64, error)
	CreateBatch(items []*models.Configuration) error
	Count() (int64, error)
}

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) FindAll() ([]*models.Configuration, error) {
	var items []*models.Configuration
	err := r.db.Find(&items).Error
	return items, err
}

// FindAllOrdered - для админки: по категории, потом по ключу
func (r *configRepo) FindAllOrdered() ([]*models.Configuration, error) {
	var items []*models.Configuration
	err := r.db.Order("category asc, key asc").Find(&items).Error
	return items, err
}

func (r *configRepo) FindByKey(key string) (*models.Configuration, error) {
	var item models.Configuration
	err := r.db.Where("key = ?", key).First(&item).Error
	return &item, err
}

// UpdateValue обновляет только существующий ключ и возвращает число
// затронутых строк. Несуществующий ключ не создаётся: набор ключей
// определён схемой.
func (r *configRepo) UpdateValue(key string, value float64) (int64, error) {
	result := r.db.Model(&models.Configuration{}).Where("key = ?", key).Update("value", value)
	return result.RowsAffected, result.Error
}

func (r *configRepo) CreateBatch(items []*models.Configuration) error {
	return r.db.Create(items).Error
}

func (r *configRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Configuration{}).Count(&count).Error
	return count, err
}
