package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender - пол пользователя
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Goal - цель пользователя
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscle_gain"
)

// Единицы измерения веса и роста
type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

type HeightUnit string

const (
	HeightCm HeightUnit = "cm"
	HeightFt HeightUnit = "ft"
)

// UserInput - анкета одного расчёта (неизменяемая после создания)
type UserInput struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	Age        int        `gorm:"not null" json:"age"`
	Gender     Gender     `gorm:"type:varchar(10);not null" json:"gender"`
	Weight     float64    `gorm:"type:decimal(5,2);not null" json:"weight"`
	WeightUnit WeightUnit `gorm:"type:varchar(5);default:'kg'" json:"weightUnit"`
	Height     float64    `gorm:"type:decimal(5,2);not null" json:"height"`
	HeightUnit HeightUnit `gorm:"type:varchar(5);default:'cm'" json:"heightUnit"`
	Goal       Goal       `gorm:"type:varchar(20);not null" json:"goal"`

	// Недельное расписание удаляется каскадно вместе с анкетой
	Workouts []Workout `gorm:"foreignKey:UserInputID;constraint:OnDelete:CASCADE" json:"workouts,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *UserInput) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
