package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConfigCategory - категория коэффициента
type ConfigCategory string

const (
	CategoryActivityLevel  ConfigCategory = "activity_level"
	CategoryGoalAdjustment ConfigCategory = "goal_adjustment"
	CategoryMacroRatio     ConfigCategory = "macro_ratio"
	CategorySpecialDay     ConfigCategory = "special_day"
	// Историческая категория: интенсивности перенесены в каталог типов
	// тренировок, значение оставлено для старых строк.
	CategoryWorkoutIntensity ConfigCategory = "workout_intensity"
)

// Configuration - один именованный коэффициент расчёта.
// Набор ключей фиксирован схемой, оператор меняет только значения.
type Configuration struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Key         string         `gorm:"uniqueIndex;not null" json:"key"`
	Value       float64        `gorm:"type:decimal(10,4);not null" json:"value"`
	Category    ConfigCategory `gorm:"type:varchar(30);not null" json:"category"`
	Label       string         `json:"label"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (c *Configuration) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
