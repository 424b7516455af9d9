package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/EmirJeanAntonios/macro-calculator/internal/api"
	appconfig "github.com/EmirJeanAntonios/macro-calculator/internal/config"
	"github.com/EmirJeanAntonios/macro-calculator/internal/database"
	"github.com/EmirJeanAntonios/macro-calculator/internal/models"
	"github.com/EmirJeanAntonios/macro-calculator/internal/repository"
	"github.com/EmirJeanAntonios/macro-calculator/internal/service"
	"github.com/EmirJeanAntonios/macro-calculator/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	cfg, err := appconfig.Load()
	if err != nil {
		utils.Log.Error(err.Error())
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.Configuration{},
		&models.WorkoutType{},
		&models.UserInput{},
		&models.Workout{},
		&models.MacroResult{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	configRepo := repository.NewConfigRepo(db)
	workoutTypeRepo := repository.NewWorkoutTypeRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// -----------------------
	// SERVICES
	configService := service.NewConfigService(configRepo)
	workoutTypeService := service.NewWorkoutTypeService(workoutTypeRepo)
	calculatorService := service.NewCalculatorService(resultRepo, configService, workoutTypeService, cfg.CacheTTL)

	// Засев значений по умолчанию при первом старте
	if err := configService.SeedDefaults(); err != nil {
		utils.Log.Error("Failed to seed configurations: " + err.Error())
		os.Exit(1)
	}
	if err := workoutTypeService.SeedDefaults(); err != nil {
		utils.Log.Error("Failed to seed workout types: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// HTTP
	router := gin.Default()
	api.SetupRoutes(router, calculatorService, workoutTypeService)

	// Фронтенд живёт на другом origin
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	utils.Log.Info("Calculator API starting on " + cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, handler); err != nil {
		utils.Log.Error("Server stopped: " + err.Error())
		os.Exit(1)
	}
}
