package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/TallerExpressCR/taller-app-core/internal/mockapi"
)

func getDBPath() string {
	if v := os.Getenv("MOCK_DB_PATH"); v != "" {
		return v
	}
	return "mockapi.db"
}

// seed deja datos mínimos para probar los flujos a mano. Es idempotente:
// si ya hay usuarios no vuelve a insertar nada.
func seed(db *gorm.DB) {
	var count int64
	db.Model(&mockapi.User{}).Count(&count)
	if count > 0 {
		return
	}

	if _, err := mockapi.SeedUser(db, "María Solano", "maria@example.com", "secreto1", "8888-1234", "cliente"); err != nil {
		log.Printf("seed user failed: %v", err)
	}
	if _, err := mockapi.SeedUser(db, "José Técnico", "tecnico@example.com", "secreto2", "8888-5678", "tecnico"); err != nil {
		log.Printf("seed user failed: %v", err)
	}

	if err := mockapi.SeedVehicle(db, "ABC123", "Toyota", "Corolla"); err != nil {
		log.Printf("seed vehicle failed: %v", err)
	}
	if err := mockapi.SeedVehicle(db, "XYZ789", "Hyundai", "Tucson"); err != nil {
		log.Printf("seed vehicle failed: %v", err)
	}

	if _, err := mockapi.SeedQuote(db, mockapi.Quote{
		Servicio:  "Alineado de dirección",
		Nombre:    "María Solano",
		Correo:    "maria@example.com",
		Telefono:  "8888-1234",
		Provincia: "San José",
		Canton:    "Central",
		Distrito:  "Carmen",
		Sucursal:  "1",
		Fecha:     "2025-03-10",
		Hora:      "09:00",
		TipoPlaca: "particular",
		Placa:     "ABC123",
		Marca:     "Toyota",
		Modelo:    "Corolla",
		Problema:  "Ruido al frenar y volante descentrado",
		Estado:    "En proceso",
		Tecnico:   "José Técnico",
	}); err != nil {
		log.Printf("seed quote failed: %v", err)
	}

	log.Println("seeded mock data: maria@example.com / secreto1")
}
