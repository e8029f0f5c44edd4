package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerExpressCR/taller-app-core/internal/config"
)

// RegisterRoutes monta el contrato completo que la app espera del backend.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewHandler(db, cfg)

	r.POST("/login", h.Login)

	// lectura abierta: la vista de seguimiento funciona con solo el id
	r.GET("/quotes", h.ListQuotes)
	r.GET("/quotes/:id", h.GetQuote)
	r.POST("/quotes", h.CreateQuote)

	// el registro de placas vive en otro servicio; aquí se monta junto
	// para que el entorno de desarrollo sea un solo proceso
	r.GET("/placas/:plate", h.LookupPlate)

	secured := r.Group("/")
	secured.Use(authMiddleware(cfg))
	{
		secured.PATCH("/quotes/:id", h.PatchQuote)
		secured.PUT("/user/:id", h.UpdateUser)
	}
}
