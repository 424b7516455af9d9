package service

import (
	"sort"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory реализации репозиториев для тестов сервисного слоя

type memConfigRepo struct {
	items map[string]*models.Configuration
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{items: make(map[string]*models.Configuration)}
}

func (r *memConfigRepo) FindAll() ([]*models.Configuration, error) {
	var out []*models.Configuration
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *memConfigRepo) FindAllOrdered() ([]*models.Configuration, error) {
	out, _ := r.FindAll()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (r *memConfigRepo) FindByKey(key string) (*models.Configuration, error) {
	if item, ok := r.items[key]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memConfigRepo) UpdateValue(key string, value float64) (int64, error) {
	if item, ok := r.items[key]; ok {
		item.Value = value
		return 1, nil
	}
	return 0, nil
}

func (r *memConfigRepo) CreateBatch(items []*models.Configuration) error {
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		r.items[item.Key] = item
	}
	return nil
}

func (r *memConfigRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type memWorkoutTypeRepo struct {
	items map[string]*models.WorkoutType // id -> тип
}

func newMemWorkoutTypeRepo() *memWorkoutTypeRepo {
	return &memWorkoutTypeRepo{items: make(map[string]*models.WorkoutType)}
}

func (r *memWorkoutTypeRepo) sorted(active bool) []*models.WorkoutType {
	var out []*models.WorkoutType
	for _, wt := range r.items {
		if active && !wt.IsActive {
			continue
		}
		out = append(out, wt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *memWorkoutTypeRepo) FindAll() ([]*models.WorkoutType, error) {
	return r.sorted(false), nil
}

func (r *memWorkoutTypeRepo) FindActive() ([]*models.WorkoutType, error) {
	return r.sorted(true), nil
}

func (r *memWorkoutTypeRepo) FindByID(id string) (*models.WorkoutType, error) {
	if wt, ok := r.items[id]; ok {
		return wt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memWorkoutTypeRepo) FindByKey(key string) (*models.WorkoutType, error) {
	for _, wt := range r.items {
		if wt.Key == key {
			return wt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memWorkoutTypeRepo) Create(wt *models.WorkoutType) (*models.WorkoutType, error) {
	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	r.items[wt.ID] = wt
	return wt, nil
}

func (r *memWorkoutTypeRepo) Update(wt *models.WorkoutType) error {
	r.items[wt.ID] = wt
	return nil
}

func (r *memWorkoutTypeRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *memWorkoutTypeRepo) CreateBatch(items []*models.WorkoutType) error {
	for _, wt := range items {
		if _, err := r.Create(wt); err != nil {
			return err
		}
	}
	return nil
}

func (r *memWorkoutTypeRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type memResultRepo struct {
	inputs  map[string]*models.UserInput
	results map[string]*models.MacroResult
}

func newMemResultRepo() *memResultRepo {
	return &memResultRepo{
		inputs:  make(map[string]*models.UserInput),
		results: make(map[string]*models.MacroResult),
	}
}

func (r *memResultRepo) SaveInput(input *models.UserInput) (*models.UserInput, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	r.inputs[input.ID] = input
	return input, nil
}

func (r *memResultRepo) SaveResult(result *models.MacroResult) (*models.MacroResult, error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	r.results[result.ID] = result
	return result, nil
}

func (r *memResultRepo) FindByID(id string) (*models.MacroResult, error) {
	if result, ok := r.results[id]; ok {
		found := *result
		found.UserInput = r.inputs[result.UserInputID]
		return &found, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memResultRepo) FindPage(page, limit int) ([]*models.MacroResult, int64, error) {
	var out []*models.MacroResult
	for _, result := range r.results {
		out = append(out, result)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CalculatedAt.After(out[j].CalculatedAt)
	})
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *memResultRepo) Delete(id string) (int64, error) {
	if _, ok := r.results[id]; !ok {
		return 0, nil
	}
	delete(r.results, id)
	return 1, nil
}
