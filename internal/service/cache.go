package service

import (
	"sync/atomic"
	"time"
)

// DefaultCacheTTL - окно устаревания снимков конфигурации.
// Изменение коэффициента оператором вступает в силу для новых расчётов
// максимум через это время.
const DefaultCacheTTL = time.Minute

// snapshot - карта значений и момент её загрузки как единое целое,
// заменяется атомарно
type snapshot struct {
	values    map[string]float64
	fetchedAt time.Time
}

// SnapshotCache - сквозной кэш над хранилищем конфигурации, чтобы
// частые расчёты не ходили в базу на каждый запрос. Параллельные
// обновления не синхронизируются: оба перечитают одно и то же,
// побеждает последняя запись.
type SnapshotCache struct {
	ttl  time.Duration
	load func() (map[string]float64, error)
	cur  atomic.Pointer[snapshot]
}

func NewSnapshotCache(ttl time.Duration, load func() (map[string]float64, error)) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SnapshotCache{ttl: ttl, load: load}
}

// Get возвращает свежий непустой снимок либо синхронно перечитывает
// хранилище перед возвратом
func (c *SnapshotCache) Get() (map[string]float64, error) {
	if s := c.cur.Load(); s != nil && len(s.values) > 0 && time.Since(s.fetchedAt) < c.ttl {
		return s.values, nil
	}

	values, err := c.load()
	if err != nil {
		return nil, err
	}

	c.cur.Store(&snapshot{values: values, fetchedAt: time.Now()})
	return values, nil
}
