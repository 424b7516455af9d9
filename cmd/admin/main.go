package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/EmirJeanAntonios/macro-calculator/internal/admin"
	appconfig "github.com/EmirJeanAntonios/macro-calculator/internal/config"
	"github.com/EmirJeanAntonios/macro-calculator/internal/database"
	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/EmirJeanAntonios/macro-calculator/internal/repository"
	"github.com/EmirJeanAntonios/macro-calculator/internal/service"
	"github.com/EmirJeanAntonios/macro-calculator/pkg/utils"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		utils.Log.Error(err.Error())
		os.Exit(1)
	}
	if cfg.AdminKey == "" {
		utils.Log.Error("ADMIN_KEY not set")
		os.Exit(1)
	}

	// Подключение к базе
	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.Configuration{},
		&models.WorkoutType{},
		&models.UserInput{},
		&models.Workout{},
		&models.MacroResult{},
	); err != nil {
		utils.Log.Error("Failed to migrate tables: " + err.Error())
		os.Exit(1)
	}

	// Репозитории
	configRepo := repository.NewConfigRepo(db)
	workoutTypeRepo := repository.NewWorkoutTypeRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Сервисы
	configService := service.NewConfigService(configRepo)
	workoutTypeService := service.NewWorkoutTypeService(workoutTypeRepo)
	calculatorService := service.NewCalculatorService(resultRepo, configService, workoutTypeService, cfg.CacheTTL)

	// Засев идемпотентен, поэтому выполняется в обоих бинарниках
	if err := configService.SeedDefaults(); err != nil {
		utils.Log.Error("Failed to seed configurations: " + err.Error())
		os.Exit(1)
	}
	if err := workoutTypeService.SeedDefaults(); err != nil {
		utils.Log.Error("Failed to seed workout types: " + err.Error())
		os.Exit(1)
	}

	// Gin router
	router := gin.Default()
	admin.SetupRoutes(router, configService, workoutTypeService, calculatorService, cfg.AdminKey)

	utils.Log.Info("Admin panel starting on " + cfg.AdminAddr)
	if err := router.Run(cfg.AdminAddr); err != nil {
		utils.Log.Error("Failed to run admin panel: " + err.Error())
		os.Exit(1)
	}
}
