package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/EmirJeanAntonios/macro-calculator/internal/repository"
	"gorm.io/gorm"
)

// CalculatorService оркестрирует расчёт: берёт снимки конфигурации из
// кэшей, прогоняет чистый конвейер и отдаёт результат на запись.
type CalculatorService struct {
	resultRepo     repository.ResultRepository
	configCache    *SnapshotCache
	intensityCache *SnapshotCache
}

func NewCalculatorService(
	resultRepo repository.ResultRepository,
	configService *ConfigService,
	workoutTypeService *WorkoutTypeService,
	cacheTTL time.Duration,
) *CalculatorService {
	return &CalculatorService{
		resultRepo:     resultRepo,
		configCache:    NewSnapshotCache(cacheTTL, configService.ConfigMap),
		intensityCache: NewSnapshotCache(cacheTTL, workoutTypeService.IntensityMap),
	}
}

// CalculateMacros - полный цикл одного запроса: снимки -> конвейер ->
// запись анкеты с расписанием и результата
func (s *CalculatorService) CalculateMacros(dto CalculateMacrosDTO) (*models.MacroResult, error) {
	config, err := s.configCache.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load config snapshot: %w", err)
	}
	intensityMap, err := s.intensityCache.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity snapshot: %w", err)
	}

	result := ComputeMacros(dto.UserInput, dto.Workouts, config, intensityMap)

	input := &models.UserInput{
		Age:        dto.UserInput.Age,
		Gender:     models.Gender(dto.UserInput.Gender),
		Weight:     dto.UserInput.Weight,
		WeightUnit: models.WeightUnit(dto.UserInput.WeightUnit),
		Height:     dto.UserInput.Height,
		HeightUnit: models.HeightUnit(dto.UserInput.HeightUnit),
		Goal:       models.Goal(dto.UserInput.Goal),
	}
	for _, w := range dto.Workouts {
		input.Workouts = append(input.Workouts, models.Workout{
			Day:   models.DayOfWeek(w.Day),
			Type:  w.Type,
			Hours: w.Hours,
			Notes: w.Notes,
		})
	}

	savedInput, err := s.resultRepo.SaveInput(input)
	if err != nil {
		return nil, fmt.Errorf("failed to save user input: %w", err)
	}

	result.UserInputID = savedInput.ID
	saved, err := s.resultRepo.SaveResult(result)
	if err != nil {
		return nil, fmt.Errorf("failed to save macro result: %w", err)
	}
	return saved, nil
}

// GetResultByID - сохранённый результат вместе с анкетой и расписанием
func (s *CalculatorService) GetResultByID(id string) (*models.MacroResult, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

// ListResults - страница результатов для админки, новые сверху
func (s *CalculatorService) ListResults(page, limit int) ([]*models.MacroResult, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.resultRepo.FindPage(page, limit)
}

// DeleteResult - удаление записи оператором
func (s *CalculatorService) DeleteResult(id string) error {
	affected, err := s.resultRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResultNotFound
	}
	return nil
}
