package middleware

import (
	"context"
	"log"
	"time"

	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/gin-gonic/gin"
)

// StalenessRefresh watches the gap between requests. After a long idle
// period the snapshot may no longer reflect the database, so the first
// request back triggers a background reload. That request is still
// served from the old snapshot; only the swap waits for the reload.
func StalenessRefresh(monitor *readmodel.StalenessMonitor, pipeline *mutation.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor.Observe(time.Now()) {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := pipeline.Reload(ctx); err != nil {
					log.Printf("stale snapshot reload failed: %v", err)
				}
			}()
		}
		c.Next()
	}
}
