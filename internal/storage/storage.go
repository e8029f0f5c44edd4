// Package storage es el almacenamiento local del dispositivo: el borrador de
// cita, la sesión, el idioma y el cache legado de checklists por cita. Todo
// vive en un sqlite embebido; quien llama decide si un error se propaga o
// solo se registra (el borrador, por ejemplo, degrada a memoria).
package storage

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

const (
	draftKey        = "appointmentData"
	sessionTokenKey = "authToken"
	sessionUserKey  = "authUser"
	languageKey     = "language"
)

type localValue struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string
	UpdatedAt time.Time
}

type checklistCache struct {
	QuoteID   string `gorm:"primaryKey;size:64"`
	Payload   string
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open local storage")
	}

	if err := db.AutoMigrate(&localValue{}, &checklistCache{}); err != nil {
		return nil, errors.Wrap(err, "migrate local storage")
	}

	return &Store{db: db}, nil
}

// Reset borra todo el estado local (logout completo o "borrar datos").
func (s *Store) Reset() error {
	if err := s.db.Where("1 = 1").Delete(&localValue{}).Error; err != nil {
		return errors.Wrap(err, "reset local storage")
	}
	if err := s.db.Where("1 = 1").Delete(&checklistCache{}).Error; err != nil {
		return errors.Wrap(err, "reset checklist cache")
	}
	return nil
}

// --------- primitivas clave/valor ---------

func (s *Store) set(key, value string) error {
	rec := localValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Save(&rec).Error
	return errors.Wrapf(err, "write %s", key)
}

func (s *Store) get(key string) (string, bool, error) {
	var rec localValue
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read %s", key)
	}
	return rec.Value, true, nil
}

func (s *Store) delete(key string) error {
	err := s.db.Delete(&localValue{}, "key = ?", key).Error
	return errors.Wrapf(err, "delete %s", key)
}

// --------- borrador de cita ---------

func (s *Store) SaveDraft(d *models.AppointmentDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "marshal draft")
	}
	return s.set(draftKey, string(raw))
}

// LoadDraft devuelve nil sin error cuando no hay borrador guardado.
func (s *Store) LoadDraft() (*models.AppointmentDraft, error) {
	raw, ok, err := s.get(draftKey)
	if err != nil || !ok {
		return nil, err
	}
	var d models.AppointmentDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, errors.Wrap(err, "unmarshal draft")
	}
	return &d, nil
}

func (s *Store) ClearDraft() error {
	return s.delete(draftKey)
}

// --------- sesión ---------

func (s *Store) SaveSession(token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal user")
	}
	if err := s.set(sessionTokenKey, token); err != nil {
		return err
	}
	return s.set(sessionUserKey, string(raw))
}

func (s *Store) LoadSession() (string, *models.User, error) {
	token, ok, err := s.get(sessionTokenKey)
	if err != nil || !ok {
		return "", nil, err
	}
	raw, ok, err := s.get(sessionUserKey)
	if err != nil || !ok {
		return token, nil, err
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return token, nil, errors.Wrap(err, "unmarshal user")
	}
	return token, &u, nil
}

func (s *Store) ClearSession() error {
	if err := s.delete(sessionTokenKey); err != nil {
		return err
	}
	return s.delete(sessionUserKey)
}

// --------- idioma ---------

func (s *Store) SaveLanguage(lang string) error {
	return s.set(languageKey, lang)
}

func (s *Store) Language() (string, error) {
	lang, _, err := s.get(languageKey)
	return lang, err
}

// --------- cache legado de checklist por cita ---------
// Superado por el checklist del servidor, pero se sigue escribiendo para que
// las versiones viejas de la app no pierdan el avance hecho sin conexión.

func (s *Store) SaveChecklist(quoteID string, steps []models.StepRecord) error {
	raw, err := json.Marshal(steps)
	if err != nil {
		return errors.Wrap(err, "marshal checklist")
	}
	rec := checklistCache{QuoteID: quoteID, Payload: string(raw), UpdatedAt: time.Now()}
	return errors.Wrap(s.db.Save(&rec).Error, "write checklist cache")
}

func (s *Store) LoadChecklist(quoteID string) ([]models.StepRecord, error) {
	var rec checklistCache
	err := s.db.First(&rec, "quote_id = ?", quoteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read checklist cache")
	}
	var steps []models.StepRecord
	if err := json.Unmarshal([]byte(rec.Payload), &steps); err != nil {
		return nil, errors.Wrap(err, "unmarshal checklist cache")
	}
	return steps, nil
}
