package api

import (
	"errors"
	"net/http"

	"github.com/EmirJeanAntonios/macro-calculator/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRoutes - публичная поверхность калькулятора
func SetupRoutes(r *gin.Engine,
	calculatorService *service.CalculatorService,
	workoutTypeService *service.WorkoutTypeService,
) {
	apiGroup := r.Group("/api")

	// Расчёт макросов по анкете и недельному расписанию
	apiGroup.POST("/calculate", func(c *gin.Context) {
		var dto service.CalculateMacrosDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		result, err := calculatorService.CalculateMacros(dto)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	})

	// Сохранённый результат по идентификатору
	apiGroup.GET("/macros/:id", func(c *gin.Context) {
		result, err := calculatorService.GetResultByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrResultNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	})

	// Активные типы тренировок для списка выбора
	apiGroup.GET("/workout-types", func(c *gin.Context) {
		types, err := workoutTypeService.ListActive()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": types})
	})
}
