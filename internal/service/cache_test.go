package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Свежий непустой снимок отдаётся без похода в хранилище
func TestSnapshotCache_ServesFreshSnapshot(t *testing.T) {
	loads := 0
	cache := NewSnapshotCache(time.Minute, func() (map[string]float64, error) {
		loads++
		return map[string]float64{"goal_maintenance": 1.0}, nil
	})

	for i := 0; i < 5; i++ {
		values, err := cache.Get()
		assert.NoError(t, err)
		assert.Equal(t, 1.0, values["goal_maintenance"])
	}
	assert.Equal(t, 1, loads)
}

// После истечения TTL снимок перечитывается и отражает новое значение
func TestSnapshotCache_RefreshAfterTTL(t *testing.T) {
	current := map[string]float64{"goal_weight_loss": 0.8}
	cache := NewSnapshotCache(30*time.Millisecond, func() (map[string]float64, error) {
		return current, nil
	})

	values, err := cache.Get()
	assert.NoError(t, err)
	assert.Equal(t, 0.8, values["goal_weight_loss"])

	// Оператор меняет коэффициент: внутри окна TTL допустимо старое значение
	current = map[string]float64{"goal_weight_loss": 0.7}
	values, err = cache.Get()
	assert.NoError(t, err)
	assert.Contains(t, []float64{0.8, 0.7}, values["goal_weight_loss"])

	time.Sleep(40 * time.Millisecond)
	values, err = cache.Get()
	assert.NoError(t, err)
	assert.Equal(t, 0.7, values["goal_weight_loss"])
}

// Пустой снимок не кэшируется: следующий вызов снова идёт в хранилище
func TestSnapshotCache_EmptySnapshotNotCached(t *testing.T) {
	loads := 0
	cache := NewSnapshotCache(time.Minute, func() (map[string]float64, error) {
		loads++
		if loads == 1 {
			return map[string]float64{}, nil
		}
		return map[string]float64{"activity_sedentary": 1.2}, nil
	})

	values, err := cache.Get()
	assert.NoError(t, err)
	assert.Empty(t, values)

	values, err = cache.Get()
	assert.NoError(t, err)
	assert.Equal(t, 1.2, values["activity_sedentary"])
	assert.Equal(t, 2, loads)
}

// Ошибка хранилища отдаётся вызывающему, кэш не портится
func TestSnapshotCache_LoadError(t *testing.T) {
	fail := true
	cache := NewSnapshotCache(time.Minute, func() (map[string]float64, error) {
		if fail {
			return nil, errors.New("db down")
		}
		return map[string]float64{"goal_maintenance": 1.0}, nil
	})

	_, err := cache.Get()
	assert.Error(t, err)

	fail = false
	values, err := cache.Get()
	assert.NoError(t, err)
	assert.Equal(t, 1.0, values["goal_maintenance"])
}
