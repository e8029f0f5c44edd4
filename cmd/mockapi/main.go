package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/TallerExpressCR/taller-app-core/internal/config"
	"github.com/TallerExpressCR/taller-app-core/internal/mockapi"
)

// Backend de desarrollo: levanta el contrato REST completo con datos de
// ejemplo para correr la app sin el backend real.
func main() {

	cfg := config.Load()

	db, err := mockapi.OpenDB(getDBPath())
	if err != nil {
		log.Fatalf("failed to open mock database: %v", err)
	}

	seed(db)

	r := gin.Default()
	mockapi.RegisterRoutes(r, db, cfg)

	log.Printf("Mock backend running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
