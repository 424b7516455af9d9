package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EmirJeanAntonios/macro-calculator/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRoutes - операторская поверхность: коэффициенты, каталог типов
// тренировок и записи расчётов. Оператор меняет только входы движка,
// никогда его логику.
func SetupRoutes(r *gin.Engine,
	configService *service.ConfigService,
	workoutTypeService *service.WorkoutTypeService,
	calculatorService *service.CalculatorService,
	adminKey string,
) {
	adminGroup := r.Group("/admin", KeyAuthMiddleware(adminKey))

	// Коэффициенты
	adminGroup.GET("/config", func(c *gin.Context) {
		grouped, err := configService.Grouped()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
	})

	adminGroup.PUT("/config", func(c *gin.Context) {
		var dto service.UpdateConfigDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := configService.UpdateValues(dto); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		grouped, err := configService.Grouped()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
	})

	// Каталог типов тренировок
	adminGroup.GET("/workout-types", func(c *gin.Context) {
		types, err := workoutTypeService.ListAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": types})
	})

	adminGroup.POST("/workout-types", func(c *gin.Context) {
		var dto service.CreateWorkoutTypeDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		wt, err := workoutTypeService.Create(dto)
		if err != nil {
			if errors.Is(err, service.ErrWorkoutTypeExists) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": wt})
	})

	adminGroup.PUT("/workout-types/:id", func(c *gin.Context) {
		var dto service.UpdateWorkoutTypeDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		wt, err := workoutTypeService.Update(c.Param("id"), dto)
		if err != nil {
			if errors.Is(err, service.ErrWorkoutTypeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": wt})
	})

	adminGroup.DELETE("/workout-types/:id", func(c *gin.Context) {
		err := workoutTypeService.Delete(c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrWorkoutTypeNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			case errors.Is(err, service.ErrDefaultTypeProtected):
				c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"deleted": true}})
	})

	// Записи расчётов
	adminGroup.GET("/records", func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		records, total, err := calculatorService.ListResults(page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		totalPages := total / int64(limit)
		if total%int64(limit) != 0 {
			totalPages++
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    records,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	})

	adminGroup.GET("/records/:id", func(c *gin.Context) {
		record, err := calculatorService.GetResultByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrResultNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
	})

	adminGroup.DELETE("/records/:id", func(c *gin.Context) {
		if err := calculatorService.DeleteResult(c.Param("id")); err != nil {
			if errors.Is(err, service.ErrResultNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"deleted": true}})
	})
}
