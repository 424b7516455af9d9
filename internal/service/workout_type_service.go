package service

import (
	"errors"
	"fmt"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/EmirJeanAntonios/macro-calculator/internal/repository"
	"github.com/EmirJeanAntonios/macro-calculator/pkg/utils"
	"gorm.io/gorm"
)

type WorkoutTypeService struct {
	repo repository.WorkoutTypeRepository
}

func NewWorkoutTypeService(repo repository.WorkoutTypeRepository) *WorkoutTypeService {
	return &WorkoutTypeService{repo: repo}
}

// SeedDefaults - засев встроенных типов тренировок при первом старте
func (s *WorkoutTypeService) SeedDefaults() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count workout types: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.CreateBatch(defaultWorkoutTypes()); err != nil {
		return fmt.Errorf("failed to seed workout types: %w", err)
	}
	utils.Log.Info("Default workout types seeded")
	return nil
}

// ListActive - активные типы для движка и для списка выбора на фронте,
// порядок: sortOrder, затем имя
func (s *WorkoutTypeService) ListActive() ([]*models.WorkoutType, error) {
	return s.repo.FindActive()
}

// ListAll - все типы, включая выключенные, для админки
func (s *WorkoutTypeService) ListAll() ([]*models.WorkoutType, error) {
	return s.repo.FindAll()
}

// IntensityMap - ключ -> интенсивность по активным типам.
// Источник данных для расчётного конвейера (через кэш).
func (s *WorkoutTypeService) IntensityMap() (map[string]float64, error) {
	types, err := s.repo.FindActive()
	if err != nil {
		return nil, err
	}
	m := make(map[string]float64, len(types))
	for _, wt := range types {
		m[wt.Key] = wt.Intensity
	}
	return m, nil
}

// Create - новый пользовательский тип. Дубликат ключа - конфликт.
func (s *WorkoutTypeService) Create(dto CreateWorkoutTypeDTO) (*models.WorkoutType, error) {
	if _, err := s.repo.FindByKey(dto.Key); err == nil {
		return nil, ErrWorkoutTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wt := &models.WorkoutType{
		Key:         dto.Key,
		Name:        dto.Name,
		Intensity:   dto.Intensity,
		Icon:        dto.Icon,
		Color:       dto.Color,
		Description: dto.Description,
		SortOrder:   dto.SortOrder,
		IsActive:    true,
		IsDefault:   false,
	}
	return s.repo.Create(wt)
}

// Update - частичное обновление типа по id
func (s *WorkoutTypeService) Update(id string, dto UpdateWorkoutTypeDTO) (*models.WorkoutType, error) {
	wt, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutTypeNotFound
		}
		return nil, err
	}

	if dto.Name != nil {
		wt.Name = *dto.Name
	}
	if dto.Intensity != nil {
		wt.Intensity = *dto.Intensity
	}
	if dto.Icon != nil {
		wt.Icon = *dto.Icon
	}
	if dto.Color != nil {
		wt.Color = *dto.Color
	}
	if dto.Description != nil {
		wt.Description = *dto.Description
	}
	if dto.SortOrder != nil {
		wt.SortOrder = *dto.SortOrder
	}
	if dto.IsActive != nil {
		wt.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(wt); err != nil {
		return nil, err
	}
	return wt, nil
}

// Delete удаляет пользовательский тип. Встроенные защищены - их можно
// только деактивировать через Update.
func (s *WorkoutTypeService) Delete(id string) error {
	wt, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkoutTypeNotFound
		}
		return err
	}
	if wt.IsDefault {
		return ErrDefaultTypeProtected
	}
	return s.repo.Delete(id)
}

// defaultWorkoutTypes - встроенный каталог: от отдыха (0) до кроссфита (1.7).
// Интенсивности выведены из METs соответствующих нагрузок.
func defaultWorkoutTypes() []*models.WorkoutType {
	return []*models.WorkoutType{
		{Key: "rest", Name: "Rest", Intensity: 0, Icon: "Moon", Color: "slate", Description: "No training", SortOrder: 0, IsActive: true, IsDefault: true},
		{Key: "walking", Name: "Walking", Intensity: 0.5, Icon: "Footprints", Color: "green", Description: "Light activity (~3.5 METs)", SortOrder: 1, IsActive: true, IsDefault: true},
		{Key: "yoga", Name: "Yoga", Intensity: 0.6, Icon: "Flower2", Color: "teal", Description: "Light to moderate (~3-4 METs)", SortOrder: 2, IsActive: true, IsDefault: true},
		{Key: "pilates", Name: "Pilates", Intensity: 0.7, Icon: "PersonStanding", Color: "purple", Description: "Moderate (~4 METs)", SortOrder: 3, IsActive: true, IsDefault: true},
		{Key: "cycling", Name: "Cycling", Intensity: 0.9, Icon: "Bike", Color: "lime", Description: "Moderate to vigorous (~6-8 METs)", SortOrder: 4, IsActive: true, IsDefault: true},
		{Key: "dance", Name: "Dance", Intensity: 0.9, Icon: "Music", Color: "pink", Description: "Moderate to vigorous (~5-8 METs)", SortOrder: 5, IsActive: true, IsDefault: true},
		{Key: "swimming", Name: "Swimming", Intensity: 1.0, Icon: "Waves", Color: "cyan", Description: "Moderate to vigorous (~6-10 METs)", SortOrder: 6, IsActive: true, IsDefault: true},
		{Key: "strength", Name: "Strength", Intensity: 1.0, Icon: "Dumbbell", Color: "blue", Description: "Moderate (~5-6 METs)", SortOrder: 7, IsActive: true, IsDefault: true},
		{Key: "cardio", Name: "Cardio", Intensity: 1.1, Icon: "HeartPulse", Color: "rose", Description: "Vigorous (~7-10 METs)", SortOrder: 8, IsActive: true, IsDefault: true},
		{Key: "running", Name: "Running", Intensity: 1.2, Icon: "Activity", Color: "orange", Description: "Vigorous (~8-12 METs)", SortOrder: 9, IsActive: true, IsDefault: true},
		{Key: "climbing", Name: "Climbing", Intensity: 1.2, Icon: "Mountain", Color: "amber", Description: "Vigorous (~8-11 METs)", SortOrder: 10, IsActive: true, IsDefault: true},
		{Key: "sports", Name: "Sports", Intensity: 1.2, Icon: "Trophy", Color: "yellow", Description: "Variable (~6-12 METs)", SortOrder: 11, IsActive: true, IsDefault: true},
		{Key: "martial_arts", Name: "Martial Arts", Intensity: 1.4, Icon: "Swords", Color: "red", Description: "Very vigorous (~10-12 METs)", SortOrder: 12, IsActive: true, IsDefault: true},
		{Key: "boxing", Name: "Boxing", Intensity: 1.5, Icon: "Hand", Color: "red", Description: "Very vigorous (~10-13 METs)", SortOrder: 13, IsActive: true, IsDefault: true},
		{Key: "hiit", Name: "HIIT", Intensity: 1.6, Icon: "Zap", Color: "violet", Description: "Extreme (~12-15 METs)", SortOrder: 14, IsActive: true, IsDefault: true},
		{Key: "crossfit", Name: "CrossFit", Intensity: 1.7, Icon: "Flame", Color: "indigo", Description: "Extreme (~12-16 METs)", SortOrder: 15, IsActive: true, IsDefault: true},
		{Key: "other", Name: "Other", Intensity: 1.0, Icon: "CircleDot", Color: "gray", Description: "Default moderate intensity", SortOrder: 16, IsActive: true, IsDefault: true},
	}
}
