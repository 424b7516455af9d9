package service

import (
	"math"

	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
)

// Чистый расчётный конвейер: (анкета, расписание, снимок конфигурации,
// снимок интенсивностей) -> MacroResult. Никаких побочных эффектов,
// одинаковый ввод всегда даёт одинаковый результат. Каждый коэффициент
// читается из снимка с жёстко зашитым fallback-значением рядом с местом
// использования: частично засеянная или испорченная конфигурация никогда
// не ломает расчёт.

// Калорийность грамма макронутриента - физиологические константы,
// не настраиваются
const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// Коэффициенты перевода единиц
const (
	lbsToKg = 0.453592
	ftToCm  = 30.48
)

// configValue - значение коэффициента из снимка или fallback
func configValue(config map[string]float64, key string, fallback float64) float64 {
	if v, ok := config[key]; ok {
		return v
	}
	return fallback
}

func convertToKg(weight float64, unit string) float64 {
	if unit == string(models.WeightLbs) {
		return weight * lbsToKg
	}
	return weight
}

func convertToCm(height float64, unit string) float64 {
	if unit == string(models.HeightFt) {
		return height * ftToCm
	}
	return height
}

// calculateBMR - формула Mifflin-St Jeor.
// Мужчины: 10*вес + 6.25*рост - 5*возраст + 5
// Женщины: 10*вес + 6.25*рост - 5*возраст - 161
// Результат остаётся вещественным, округление только при сохранении.
func calculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == string(models.GenderMale) {
		return base + 5
	}
	return base - 161
}

// workoutIntensity - множитель интенсивности типа тренировки.
// Неизвестный ключ (свежесозданный или переименованный тип) не ломает
// расчёт, а считается умеренной нагрузкой 1.0.
func workoutIntensity(workoutType string, intensityMap map[string]float64) float64 {
	if v, ok := intensityMap[workoutType]; ok {
		return v
	}
	return 1.0
}

// calculateActivityMultiplier - множитель активности из недельного
// расписания. Часы каждой тренировки взвешиваются интенсивностью типа,
// сумма усредняется на 7 дней и попадает в одну из пороговых полос.
// Границы полузакрытые: ровно 0.3 - это уже "light", не "sedentary".
func calculateActivityMultiplier(workouts []WorkoutDTO, config, intensityMap map[string]float64) float64 {
	weightedHours := 0.0
	for _, w := range workouts {
		if w.Type == models.WorkoutTypeRest {
			continue
		}
		weightedHours += w.Hours * workoutIntensity(w.Type, intensityMap)
	}
	avgWeightedHours := weightedHours / 7

	switch {
	case avgWeightedHours < 0.3:
		return configValue(config, "activity_sedentary", 1.2)
	case avgWeightedHours < 0.6:
		return configValue(config, "activity_light", 1.375)
	case avgWeightedHours < 1.0:
		return configValue(config, "activity_moderate", 1.55)
	case avgWeightedHours < 1.5:
		return configValue(config, "activity_very_active", 1.725)
	case avgWeightedHours < 2.0:
		return configValue(config, "activity_extra_active", 1.9)
	default:
		return configValue(config, "activity_athlete", 2.0)
	}
}

// calculateCaloriesForGoal - суточные калории с поправкой на цель
func calculateCaloriesForGoal(tdee int, goal string, config map[string]float64) int {
	switch goal {
	case string(models.GoalWeightLoss):
		return int(math.Round(float64(tdee) * configValue(config, "goal_weight_loss", 0.8)))
	case string(models.GoalMuscleGain):
		return int(math.Round(float64(tdee) * configValue(config, "goal_muscle_gain", 1.1)))
	default:
		return int(math.Round(float64(tdee) * configValue(config, "goal_maintenance", 1.0)))
	}
}

// calculateMacroDistribution - распределение калорий по макросам.
// carbRatio = 1 - proteinRatio - fatRatio, поэтому сумма долей всегда
// равна единице. Белковый пол (минимум г/кг) поднимает только белок;
// углеводы и жиры после этого не пересчитываются - суммарная
// калорийность макросов может превысить дневную норму, это принятое
// поведение.
func calculateMacroDistribution(calories int, weightKg float64, goal string, config map[string]float64) (protein, carbs, fats int) {
	var proteinRatio, fatRatio float64
	switch goal {
	case string(models.GoalWeightLoss):
		proteinRatio = configValue(config, "macro_protein_weight_loss", 0.35)
		fatRatio = configValue(config, "macro_fat_weight_loss", 0.30)
	case string(models.GoalMuscleGain):
		proteinRatio = configValue(config, "macro_protein_muscle_gain", 0.30)
		fatRatio = configValue(config, "macro_fat_muscle_gain", 0.25)
	default:
		proteinRatio = configValue(config, "macro_protein_maintenance", 0.25)
		fatRatio = configValue(config, "macro_fat_maintenance", 0.30)
	}
	carbRatio := 1 - proteinRatio - fatRatio

	protein = int(math.Round(float64(calories) * proteinRatio / caloriesPerGramProtein))
	carbs = int(math.Round(float64(calories) * carbRatio / caloriesPerGramCarbs))
	fats = int(math.Round(float64(calories) * fatRatio / caloriesPerGramFat))

	minProteinPerKg := configValue(config, "macro_min_protein_per_kg", 1.6)
	minProtein := int(math.Round(weightKg * minProteinPerKg))
	if protein < minProtein {
		protein = minProtein
	}

	return protein, carbs, fats
}

// dayMacros - вариант макросов для особого дня
type dayMacros struct {
	calories int
	protein  int
	carbs    int
	fats     int
}

// specialDayMacros - общая форма тренировочного дня и дня отдыха:
// калории масштабируются, белок задаётся в г/кг, жиры долей калорий,
// углеводы забирают остаток. Остаток не ограничивается снизу и на
// экстремальных входах может уйти в минус.
func specialDayMacros(baseCalories int, weightKg, multiplier, proteinPerKg, fatRatio float64) dayMacros {
	calories := int(math.Round(float64(baseCalories) * multiplier))
	protein := int(math.Round(weightKg * proteinPerKg))
	fats := int(math.Round(float64(calories) * fatRatio / caloriesPerGramFat))
	carbCalories := calories - protein*caloriesPerGramProtein - fats*caloriesPerGramFat
	carbs := int(math.Round(float64(carbCalories) / caloriesPerGramCarbs))
	return dayMacros{calories: calories, protein: protein, carbs: carbs, fats: fats}
}

// calculateWorkoutDayMacros - тренировочный день: больше калорий и углеводов
func calculateWorkoutDayMacros(baseCalories int, weightKg float64, config map[string]float64) dayMacros {
	return specialDayMacros(baseCalories, weightKg,
		configValue(config, "workout_day_multiplier", 1.1),
		configValue(config, "workout_day_protein_per_kg", 2.0),
		configValue(config, "workout_day_fat_ratio", 0.25))
}

// calculateRestDayMacros - день отдыха: меньше калорий и углеводов
func calculateRestDayMacros(baseCalories int, weightKg float64, config map[string]float64) dayMacros {
	return specialDayMacros(baseCalories, weightKg,
		configValue(config, "rest_day_multiplier", 0.9),
		configValue(config, "rest_day_protein_per_kg", 1.8),
		configValue(config, "rest_day_fat_ratio", 0.35))
}

func intPtr(v int) *int { return &v }

// ComputeMacros прогоняет весь конвейер и возвращает несохранённый
// результат (без ID и ссылки на анкету - их проставляет вызывающий
// после записи).
func ComputeMacros(input UserInputDTO, workouts []WorkoutDTO, config, intensityMap map[string]float64) *models.MacroResult {
	weightKg := convertToKg(input.Weight, input.WeightUnit)
	heightCm := convertToCm(input.Height, input.HeightUnit)

	bmr := calculateBMR(weightKg, heightCm, input.Age, input.Gender)
	activityMultiplier := calculateActivityMultiplier(workouts, config, intensityMap)
	tdee := int(math.Round(bmr * activityMultiplier))
	dailyCalories := calculateCaloriesForGoal(tdee, input.Goal, config)
	protein, carbs, fats := calculateMacroDistribution(dailyCalories, weightKg, input.Goal, config)
	workoutDay := calculateWorkoutDayMacros(dailyCalories, weightKg, config)
	restDay := calculateRestDayMacros(dailyCalories, weightKg, config)

	return &models.MacroResult{
		BMR:           int(math.Round(bmr)),
		TDEE:          tdee,
		DailyCalories: dailyCalories,
		Protein:       protein,
		Carbs:         carbs,
		Fats:          fats,

		WorkoutDayCalories: intPtr(workoutDay.calories),
		WorkoutDayProtein:  intPtr(workoutDay.protein),
		WorkoutDayCarbs:    intPtr(workoutDay.carbs),
		WorkoutDayFats:     intPtr(workoutDay.fats),

		RestDayCalories: intPtr(restDay.calories),
		RestDayProtein:  intPtr(restDay.protein),
		RestDayCarbs:    intPtr(restDay.carbs),
		RestDayFats:     intPtr(restDay.fats),
	}
}
