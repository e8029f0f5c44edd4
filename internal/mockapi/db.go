// Package mockapi es un backend de desarrollo que implementa el contrato
// REST que la app consume (login, citas, perfil, placas). Sirve para correr
// la app sin el backend real y para las pruebas de integración del cliente.
package mockapi

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// User es la fila de usuarios del backend de desarrollo.
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'cliente'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Quote guarda la cita con los nombres de columna del backend real,
// incluidas las dos formas legadas del checklist como JSON crudo.
type Quote struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Servicio string `gorm:"size:120" json:"servicio"`
	Nombre   string `gorm:"size:100" json:"nombre"`
	Correo   string `gorm:"size:100" json:"correo"`
	Telefono string `gorm:"size:20" json:"telefono"`

	Provincia string `gorm:"size:40" json:"provincia"`
	Canton    string `gorm:"size:40" json:"canton"`
	Distrito  string `gorm:"size:40" json:"distrito"`

	Sucursal string `gorm:"size:60" json:"sucursal"`
	Fecha    string `gorm:"size:10" json:"fecha"`
	Hora     string `gorm:"size:5" json:"hora"`

	TipoPlaca string `gorm:"size:20" json:"tipo_placa"`
	Placa     string `gorm:"size:10" json:"placa"`
	Marca     string `gorm:"size:40" json:"marca"`
	Modelo    string `gorm:"size:40" json:"modelo"`

	Problema string `gorm:"size:500" json:"problema"`

	Estado  string `gorm:"size:20;default:'Pendiente'" json:"estado"`
	Tecnico string `gorm:"size:100" json:"tecnico"`

	ProblemasAdicionales string `gorm:"size:500" json:"problemas_adicionales"`
	AutorizacionCliente  *bool  `json:"autorizacion_cliente"`

	Observaciones string `gorm:"size:2000" json:"observaciones"`

	ReparacionesJSON string `gorm:"column:reparaciones_list" json:"-"`
	ChecklistJSON    string `gorm:"column:checklist_data" json:"-"`

	ServicioID string `gorm:"size:40" json:"servicio_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vehicle alimenta la consulta de placas.
type Vehicle struct {
	Placa  string `gorm:"primaryKey;size:10" json:"placa"`
	Marca  string `gorm:"size:40" json:"marca"`
	Modelo string `gorm:"size:40" json:"modelo"`
}

func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &Quote{}, &Vehicle{}); err != nil {
		return nil, err
	}
	return db, nil
}
