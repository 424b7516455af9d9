package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MacroResult - итог одного расчёта. Создаётся движком один раз,
// после сохранения не изменяется.
type MacroResult struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Базовые показатели
	BMR  int `gorm:"not null" json:"bmr"`
	TDEE int `gorm:"not null" json:"tdee"`

	// Макросы обычного дня
	DailyCalories int `gorm:"not null" json:"dailyCalories"`
	Protein       int `gorm:"not null" json:"protein"` // граммы
	Carbs         int `gorm:"not null" json:"carbs"`   // граммы
	Fats          int `gorm:"not null" json:"fats"`    // граммы

	// Макросы тренировочного дня (группа либо заполнена целиком, либо пустая)
	WorkoutDayCalories *int `json:"workoutDayCalories,omitempty"`
	WorkoutDayProtein  *int `json:"workoutDayProtein,omitempty"`
	WorkoutDayCarbs    *int `json:"workoutDayCarbs,omitempty"`
	WorkoutDayFats     *int `json:"workoutDayFats,omitempty"`

	// Макросы дня отдыха
	RestDayCalories *int `json:"restDayCalories,omitempty"`
	RestDayProtein  *int `json:"restDayProtein,omitempty"`
	RestDayCarbs    *int `json:"restDayCarbs,omitempty"`
	RestDayFats     *int `json:"restDayFats,omitempty"`

	// Связь с анкетой. Удаление результата не трогает анкету и наоборот.
	UserInputID string     `gorm:"type:uuid;not null" json:"userInputId"`
	UserInput   *UserInput `gorm:"foreignKey:UserInputID" json:"userInput,omitempty"`

	CalculatedAt time.Time `gorm:"autoCreateTime" json:"calculatedAt"`
}

func (m *MacroResult) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
