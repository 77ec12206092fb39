package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/clients"
)

// NewRouter wires the external HTTP surface. CORS is wide open for
// GET/POST — a dev posture, not a trust boundary.
func NewRouter(c *clients.Clients) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("api-gateway"))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	uh := NewUserHandler(c)
	ih := NewIdeaHandler(c)
	api := r.Group("/api")
	{
		api.POST("/users", uh.Create)
		api.GET("/ideas", ih.List)
		api.POST("/ideas", ih.Create)
	}
	return r
}
