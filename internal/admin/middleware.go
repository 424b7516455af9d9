package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeyAuthMiddleware - проверка операторского доступа по заголовку
// X-Admin-Key. Полноценная сессионная авторизация живёт снаружи,
// здесь только барьер для служебных маршрутов.
func KeyAuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
