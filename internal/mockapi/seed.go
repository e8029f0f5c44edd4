package mockapi

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUser crea un usuario con la contraseña ya hasheada y devuelve su id.
func SeedUser(db *gorm.DB, name, email, password, phone, role string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	u := User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        phone,
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		return "", err
	}
	return u.ID, nil
}

// SeedQuote inserta una cita; si no trae id se le genera uno.
func SeedQuote(db *gorm.DB, q Quote) (string, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Estado == "" {
		q.Estado = "Pendiente"
	}
	if err := db.Create(&q).Error; err != nil {
		return "", err
	}
	return q.ID, nil
}

// SeedVehicle registra una placa para la consulta del registro.
func SeedVehicle(db *gorm.DB, plate, brand, model string) error {
	return db.Create(&Vehicle{Placa: plate, Marca: brand, Modelo: model}).Error
}
