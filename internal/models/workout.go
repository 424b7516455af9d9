package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayOfWeek - день недели в расписании тренировок
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// WorkoutTypeRest - день без нагрузки, не учитывается в расчёте активности
const WorkoutTypeRest = "rest"

// Workout - одна запись недельного расписания.
// Type - строковый ключ, который резолвится через каталог типов тренировок,
// поэтому новые типы не требуют изменения кода.
type Workout struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Day         DayOfWeek `gorm:"type:varchar(10);not null" json:"day"`
	Type        string    `gorm:"type:varchar(50);default:'rest'" json:"type"`
	Hours       float64   `gorm:"type:decimal(3,1);default:0" json:"hours"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	UserInputID string    `gorm:"type:uuid;not null" json:"userInputId"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
