package service

import (
	"fmt"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/EmirJeanAntonios/macro-calculator/internal/repository"
	"github.com/EmirJeanAntonios/macro-calculator/pkg/utils"
)

type ConfigService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// SeedDefaults - засев таблицы коэффициентов при первом старте.
// Если строки уже есть, ничего не делает: движок никогда не остаётся
// без конфигурации.
func (s *ConfigService) SeedDefaults() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count configurations: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.CreateBatch(defaultConfigurations()); err != nil {
		return fmt.Errorf("failed to seed configurations: %w", err)
	}
	utils.Log.Info("Default configurations seeded")
	return nil
}

// ConfigMap - все коэффициенты как карта ключ -> значение.
// Единственный источник данных для расчётного конвейера (через кэш).
func (s *ConfigService) ConfigMap() (map[string]float64, error) {
	items, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	m := make(map[string]float64, len(items))
	for _, item := range items {
		m[item.Key] = item.Value
	}
	return m, nil
}

// GetValue - значение по ключу или fallback. Отсутствующий ключ -
// не ошибка.
func (s *ConfigService) GetValue(key string, fallback float64) float64 {
	item, err := s.repo.FindByKey(key)
	if err != nil {
		return fallback
	}
	return item.Value
}

// Grouped - коэффициенты по категориям для страницы конфигурации
func (s *ConfigService) Grouped() (map[models.ConfigCategory][]*models.Configuration, error) {
	items, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	grouped := make(map[models.ConfigCategory][]*models.Configuration)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, nil
}

// UpdateValues применяет пакет изменений от оператора: последняя запись
// по ключу побеждает. Неизвестный ключ пропускается с записью в лог -
// с этого пути новые ключи не создаются.
func (s *ConfigService) UpdateValues(dto UpdateConfigDTO) error {
	for _, item := range dto.Configs {
		affected, err := s.repo.UpdateValue(item.Key, item.Value)
		if err != nil {
			return fmt.Errorf("failed to update config %q: %w", item.Key, err)
		}
		if affected == 0 {
			utils.Log.Warn("Skipped unknown config key: " + item.Key)
		}
	}
	return nil
}

// defaultConfigurations - жёстко зашитая таблица значений по умолчанию.
// Интенсивности тренировок здесь больше не живут - они переехали в
// каталог типов (см. defaultWorkoutTypes).
func defaultConfigurations() []*models.Configuration {
	return []*models.Configuration{
		// Множители уровня активности
		{Key: "activity_sedentary", Value: 1.2, Category: models.CategoryActivityLevel, Label: "Sedentary Multiplier", Description: "Little to no exercise"},
		{Key: "activity_light", Value: 1.375, Category: models.CategoryActivityLevel, Label: "Light Activity Multiplier", Description: "Light exercise 1-3 days/week"},
		{Key: "activity_moderate", Value: 1.55, Category: models.CategoryActivityLevel, Label: "Moderate Activity Multiplier", Description: "Moderate exercise 3-5 days/week"},
		{Key: "activity_very_active", Value: 1.725, Category: models.CategoryActivityLevel, Label: "Very Active Multiplier", Description: "Hard exercise 6-7 days/week"},
		{Key: "activity_extra_active", Value: 1.9, Category: models.CategoryActivityLevel, Label: "Extra Active Multiplier", Description: "Very hard exercise, physical job"},
		{Key: "activity_athlete", Value: 2.0, Category: models.CategoryActivityLevel, Label: "Athlete Multiplier", Description: "Intense training twice daily"},

		// Поправки на цель
		{Key: "goal_weight_loss", Value: 0.8, Category: models.CategoryGoalAdjustment, Label: "Weight Loss Multiplier", Description: "20% calorie deficit"},
		{Key: "goal_maintenance", Value: 1.0, Category: models.CategoryGoalAdjustment, Label: "Maintenance Multiplier", Description: "Maintain current weight"},
		{Key: "goal_muscle_gain", Value: 1.1, Category: models.CategoryGoalAdjustment, Label: "Muscle Gain Multiplier", Description: "10% calorie surplus"},

		// Доли макросов
		{Key: "macro_protein_weight_loss", Value: 0.35, Category: models.CategoryMacroRatio, Label: "Protein Ratio (Weight Loss)", Description: "35% of calories from protein"},
		{Key: "macro_fat_weight_loss", Value: 0.30, Category: models.CategoryMacroRatio, Label: "Fat Ratio (Weight Loss)", Description: "30% of calories from fat"},
		{Key: "macro_protein_muscle_gain", Value: 0.30, Category: models.CategoryMacroRatio, Label: "Protein Ratio (Muscle Gain)", Description: "30% of calories from protein"},
		{Key: "macro_fat_muscle_gain", Value: 0.25, Category: models.CategoryMacroRatio, Label: "Fat Ratio (Muscle Gain)", Description: "25% of calories from fat"},
		{Key: "macro_protein_maintenance", Value: 0.25, Category: models.CategoryMacroRatio, Label: "Protein Ratio (Maintenance)", Description: "25% of calories from protein"},
		{Key: "macro_fat_maintenance", Value: 0.30, Category: models.CategoryMacroRatio, Label: "Fat Ratio (Maintenance)", Description: "30% of calories from fat"},
		{Key: "macro_min_protein_per_kg", Value: 1.6, Category: models.CategoryMacroRatio, Label: "Min Protein per kg", Description: "Minimum grams of protein per kg body weight"},

		// Поправки особых дней
		{Key: "workout_day_multiplier", Value: 1.1, Category: models.CategorySpecialDay, Label: "Workout Day Calorie Boost", Description: "10% more calories on workout days"},
		{Key: "rest_day_multiplier", Value: 0.9, Category: models.CategorySpecialDay, Label: "Rest Day Calorie Reduction", Description: "10% fewer calories on rest days"},
		{Key: "workout_day_protein_per_kg", Value: 2.0, Category: models.CategorySpecialDay, Label: "Workout Day Protein (g/kg)", Description: "Protein per kg on workout days"},
		{Key: "rest_day_protein_per_kg", Value: 1.8, Category: models.CategorySpecialDay, Label: "Rest Day Protein (g/kg)", Description: "Protein per kg on rest days"},
		{Key: "workout_day_fat_ratio", Value: 0.25, Category: models.CategorySpecialDay, Label: "Workout Day Fat Ratio", Description: "25% of calories from fat on workout days"},
		{Key: "rest_day_fat_ratio", Value: 0.35, Category: models.CategorySpecialDay, Label: "Rest Day Fat Ratio", Description: "35% of calories from fat on rest days"},
	}
}
