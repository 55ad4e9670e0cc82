package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/audit"
	"audit-backend/internal/eventproc"
	"audit-backend/internal/shared/metrics"
	"audit-backend/internal/shared/server/middleware"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Audit *audit.Service
}

// NewRouter builds the dev server router exposing the audit pipeline over
// HTTP. The Lambda entrypoint bypasses this entirely.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.POST("/v1/audit/invoke", invokeAudit(deps.Audit))

	return r
}

// Addr formats the listen address for the given port.
func Addr(port string) string {
	return ":" + port
}

// invokeAudit accepts a raw storage-notification body and runs the same
// pipeline the Lambda handler runs.
func invokeAudit(svc *audit.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "read body"})
			return
		}

		ev, err := eventproc.Parse(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		procErr := svc.HandleEvent(c.Request.Context(), ev)
		status := audit.StatusCode(procErr)
		resp := gin.H{"statusCode": status}
		if procErr != nil {
			resp["error"] = procErr.Error()
		}
		c.JSON(status, resp)
	}
}
