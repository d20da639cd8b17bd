package middleware

import (
	"context"
	"time"

	"clat_prep_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityMiddleware transitions the daily streak on any API traffic, so
// opening the app counts as showing up for the day. The write happens off
// the request path; Touch is a no-op after the first call of a day.
func ActivityMiddleware(streak *service.StreakService) gin.HandlerFunc {
	return func(c *gin.Context) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			streak.Touch(ctx)
		}()
		c.Next()
	}
}
