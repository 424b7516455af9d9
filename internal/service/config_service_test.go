package service

import (
	"testing"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/stretchr/testify/assert"
)

func seededConfigService(t *testing.T) (*ConfigService, *memConfigRepo) {
	repo := newMemConfigRepo()
	s := NewConfigService(repo)
	assert.NoError(t, s.SeedDefaults())
	return s, repo
}

// Засев проходит один раз: повторный вызов не дублирует строки
func TestConfigService_SeedOnce(t *testing.T) {
	s, repo := seededConfigService(t)

	count, _ := repo.Count()
	assert.Equal(t, int64(22), count)

	assert.NoError(t, s.SeedDefaults())
	count, _ = repo.Count()
	assert.Equal(t, int64(22), count)
}

// Карта конфигурации содержит все засеянные ключи движка
func TestConfigService_ConfigMap(t *testing.T) {
	s, _ := seededConfigService(t)

	m, err := s.ConfigMap()
	assert.NoError(t, err)
	assert.Equal(t, 1.2, m["activity_sedentary"])
	assert.Equal(t, 0.8, m["goal_weight_loss"])
	assert.Equal(t, 1.6, m["macro_min_protein_per_kg"])
	assert.Equal(t, 0.35, m["rest_day_fat_ratio"])
}

// Обновление меняет только существующие ключи; неизвестный ключ
// пропускается и не создаётся
func TestConfigService_UpdateValues_SkipsUnknownKeys(t *testing.T) {
	s, repo := seededConfigService(t)

	err := s.UpdateValues(UpdateConfigDTO{Configs: []ConfigItemDTO{
		{Key: "goal_weight_loss", Value: 0.75},
		{Key: "made_up_key", Value: 42},
	}})
	assert.NoError(t, err)

	m, _ := s.ConfigMap()
	assert.Equal(t, 0.75, m["goal_weight_loss"])
	_, exists := m["made_up_key"]
	assert.False(t, exists)

	count, _ := repo.Count()
	assert.Equal(t, int64(22), count)
}

// Значение по ключу с fallback: отсутствующий ключ - не ошибка
func TestConfigService_GetValue(t *testing.T) {
	s, _ := seededConfigService(t)

	assert.Equal(t, 1.375, s.GetValue("activity_light", 9.9))
	assert.Equal(t, 9.9, s.GetValue("no_such_key", 9.9))
}

// Группировка по категориям для админки
func TestConfigService_Grouped(t *testing.T) {
	s, _ := seededConfigService(t)

	grouped, err := s.Grouped()
	assert.NoError(t, err)
	assert.Len(t, grouped[models.CategoryActivityLevel], 6)
	assert.Len(t, grouped[models.CategoryGoalAdjustment], 3)
	assert.Len(t, grouped[models.CategoryMacroRatio], 7)
	assert.Len(t, grouped[models.CategorySpecialDay], 6)
}
