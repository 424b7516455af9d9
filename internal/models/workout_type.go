package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutType - тип тренировки с множителем интенсивности (на основе METs).
// Встроенные типы помечены IsDefault и не удаляются, только деактивируются.
// Пользовательские типы оператор создаёт и удаляет свободно.
type WorkoutType struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	Name        string    `gorm:"not null" json:"name"`
	Intensity   float64   `gorm:"type:decimal(4,2);default:1.0" json:"intensity"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	IsDefault   bool      `gorm:"default:false" json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w *WorkoutType) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
