package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seededWorkoutTypeService(t *testing.T) (*WorkoutTypeService, *memWorkoutTypeRepo) {
	repo := newMemWorkoutTypeRepo()
	s := NewWorkoutTypeService(repo)
	assert.NoError(t, s.SeedDefaults())
	return s, repo
}

// Встроенный каталог: 17 типов от отдыха (0) до кроссфита (1.7)
func TestWorkoutTypeService_SeedDefaults(t *testing.T) {
	s, repo := seededWorkoutTypeService(t)

	count, _ := repo.Count()
	assert.Equal(t, int64(17), count)

	m, err := s.IntensityMap()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, m["rest"])
	assert.Equal(t, 1.7, m["crossfit"])
	assert.Equal(t, 1.0, m["other"])

	// Повторный засев ничего не добавляет
	assert.NoError(t, s.SeedDefaults())
	count, _ = repo.Count()
	assert.Equal(t, int64(17), count)
}

// Дубликат ключа при создании - конфликт, каталог не меняется
func TestWorkoutTypeService_CreateDuplicateKey(t *testing.T) {
	s, repo := seededWorkoutTypeService(t)

	_, err := s.Create(CreateWorkoutTypeDTO{Key: "boxing", Name: "Boxing II", Intensity: 1.4})
	assert.ErrorIs(t, err, ErrWorkoutTypeExists)

	count, _ := repo.Count()
	assert.Equal(t, int64(17), count)
}

func TestWorkoutTypeService_CreateCustomType(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)

	wt, err := s.Create(CreateWorkoutTypeDTO{Key: "rowing", Name: "Rowing", Intensity: 1.1})
	assert.NoError(t, err)
	assert.NotEmpty(t, wt.ID)
	assert.True(t, wt.IsActive)
	assert.False(t, wt.IsDefault)

	m, _ := s.IntensityMap()
	assert.Equal(t, 1.1, m["rowing"])
}

// Обновление несуществующего id - not found
func TestWorkoutTypeService_UpdateMissing(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)

	name := "Anything"
	_, err := s.Update("no-such-id", UpdateWorkoutTypeDTO{Name: &name})
	assert.ErrorIs(t, err, ErrWorkoutTypeNotFound)
}

// Частичное обновление трогает только переданные поля
func TestWorkoutTypeService_PartialUpdate(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)
	created, err := s.Create(CreateWorkoutTypeDTO{Key: "rowing", Name: "Rowing", Intensity: 1.1})
	assert.NoError(t, err)

	intensity := 1.3
	updated, err := s.Update(created.ID, UpdateWorkoutTypeDTO{Intensity: &intensity})
	assert.NoError(t, err)
	assert.Equal(t, 1.3, updated.Intensity)
	assert.Equal(t, "Rowing", updated.Name)
}

// Встроенный тип удалить нельзя - конфликт, каталог не меняется
func TestWorkoutTypeService_DeleteDefaultProtected(t *testing.T) {
	s, repo := seededWorkoutTypeService(t)

	boxing, err := repo.FindByKey("boxing")
	assert.NoError(t, err)

	err = s.Delete(boxing.ID)
	assert.ErrorIs(t, err, ErrDefaultTypeProtected)

	count, _ := repo.Count()
	assert.Equal(t, int64(17), count)
}

// Пользовательский тип удаляется свободно
func TestWorkoutTypeService_DeleteCustomType(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)
	created, err := s.Create(CreateWorkoutTypeDTO{Key: "rowing", Name: "Rowing", Intensity: 1.1})
	assert.NoError(t, err)

	assert.NoError(t, s.Delete(created.ID))

	m, _ := s.IntensityMap()
	_, exists := m["rowing"]
	assert.False(t, exists)
}

func TestWorkoutTypeService_DeleteMissing(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)
	assert.ErrorIs(t, s.Delete("no-such-id"), ErrWorkoutTypeNotFound)
}

// Деактивированный тип исчезает из активного списка и карты
// интенсивностей, но остаётся в полном списке
func TestWorkoutTypeService_DeactivateInsteadOfDelete(t *testing.T) {
	s, repo := seededWorkoutTypeService(t)
	boxing, _ := repo.FindByKey("boxing")

	inactive := false
	_, err := s.Update(boxing.ID, UpdateWorkoutTypeDTO{IsActive: &inactive})
	assert.NoError(t, err)

	m, _ := s.IntensityMap()
	_, exists := m["boxing"]
	assert.False(t, exists)

	all, _ := s.ListAll()
	assert.Len(t, all, 17)
	active, _ := s.ListActive()
	assert.Len(t, active, 16)
}

// Порядок списка: sortOrder, затем имя
func TestWorkoutTypeService_ListActiveOrder(t *testing.T) {
	s, _ := seededWorkoutTypeService(t)

	active, err := s.ListActive()
	assert.NoError(t, err)
	assert.Equal(t, "rest", active[0].Key)
	assert.Equal(t, "other", active[len(active)-1].Key)
}
