package service

// DTO расчёта макросов. Валидация границ (возраст, вес, рост, enum'ы)
// выполняется на HTTP-слое через binding-теги, движок получает уже
// проверенный ввод.

type UserInputDTO struct {
	Age        int     `json:"age" binding:"required,min=13,max=120"`
	Gender     string  `json:"gender" binding:"required,oneof=male female"`
	Weight     float64 `json:"weight" binding:"required,gt=0,lte=700"`
	WeightUnit string  `json:"weightUnit" binding:"required,oneof=kg lbs"`
	Height     float64 `json:"height" binding:"required,gt=0,lte=300"`
	HeightUnit string  `json:"heightUnit" binding:"required,oneof=cm ft"`
	Goal       string  `json:"goal" binding:"required,oneof=weight_loss maintenance muscle_gain"`
}

type WorkoutDTO struct {
	Day   string  `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Type  string  `json:"type" binding:"required"`
	Hours float64 `json:"hours" binding:"min=0,max=24"`
	Notes string  `json:"notes"`
}

type CalculateMacrosDTO struct {
	UserInput UserInputDTO `json:"userInput" binding:"required"`
	Workouts  []WorkoutDTO `json:"workouts" binding:"required,min=1,dive"`
}

// DTO каталога типов тренировок

type CreateWorkoutTypeDTO struct {
	Key         string  `json:"key" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Intensity   float64 `json:"intensity" binding:"required,min=0.1,max=3.0"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sortOrder"`
}

type UpdateWorkoutTypeDTO struct {
	Name        *string  `json:"name"`
	Intensity   *float64 `json:"intensity" binding:"omitempty,min=0.1,max=3.0"`
	Icon        *string  `json:"icon"`
	Color       *string  `json:"color"`
	Description *string  `json:"description"`
	SortOrder   *int     `json:"sortOrder"`
	IsActive    *bool    `json:"isActive"`
}

// DTO обновления коэффициентов

type ConfigItemDTO struct {
	Key   string  `json:"key" binding:"required"`
	Value float64 `json:"value"`
}

type UpdateConfigDTO struct {
	Configs []ConfigItemDTO `json:"configs" binding:"required,min=1,dive"`
}
