// Package draft mantiene el único borrador de cita en curso del asistente de
// reserva. Cada pantalla aporta sus campos con Update; el borrador se
// persiste al almacenamiento local en segundo plano y se rehidrata al abrir
// la app, de modo que un reinicio no pierde lo ya digitado.
package draft

import (
	"log"
	"sync"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

// Patch es una actualización parcial: solo los campos no-nil se aplican.
type Patch struct {
	BranchID           *string
	ServiceID          *string
	Date               *string
	Time               *string
	PlateType          *string
	PlateNumber        *string
	Brand              *string
	Model              *string
	ProblemDescription *string
}

type Store struct {
	mu    sync.Mutex
	draft models.AppointmentDraft

	local *storage.Store // nil => solo memoria para esta sesión
	kick  chan struct{}
}

func New(local *storage.Store) *Store {
	s := &Store{
		local: local,
		kick:  make(chan struct{}, 1),
	}
	go s.persistLoop()
	return s
}

// Load rehidrata el borrador persistido. Si no hay nada guardado el
// borrador queda vacío; un error de lectura solo se registra.
func (s *Store) Load() {
	if s.local == nil {
		return
	}
	d, err := s.local.LoadDraft()
	if err != nil {
		log.Printf("draft: load failed, starting empty: %v", err)
		return
	}
	if d == nil {
		return
	}
	s.mu.Lock()
	s.draft = *d
	s.mu.Unlock()
}

// Update aplica un merge superficial y agenda la persistencia del borrador
// completo. La escritura es fire-and-forget: una ráfaga de updates se
// coalesce y el último estado es el que queda en disco.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	apply(&s.draft, p)
	s.mu.Unlock()
	s.schedulePersist()
}

// Clear resetea el borrador y elimina la copia persistida. Se usa después de
// un envío exitoso o cuando el cliente descarta la reserva.
func (s *Store) Clear() {
	s.mu.Lock()
	s.draft = models.AppointmentDraft{}
	s.mu.Unlock()

	if s.local == nil {
		return
	}
	if err := s.local.ClearDraft(); err != nil {
		log.Printf("draft: clear failed: %v", err)
	}
}

// Get devuelve una copia del borrador actual.
func (s *Store) Get() models.AppointmentDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// IsComplete reporta si los nueve campos del borrador ya tienen valor.
// Es la condición que habilita el botón "Siguiente" hacia el envío.
func (s *Store) IsComplete() bool {
	d := s.Get()
	return d.BranchID != "" &&
		d.ServiceID != "" &&
		d.Date != "" &&
		d.Time != "" &&
		d.PlateType != "" &&
		d.PlateNumber != "" &&
		d.Brand != "" &&
		d.Model != "" &&
		d.ProblemDescription != ""
}

// Flush persiste el borrador de forma síncrona. La app lo llama al pasar a
// segundo plano, donde ya no hay garantía de que el loop alcance a correr.
func (s *Store) Flush() {
	s.persist()
}

func (s *Store) schedulePersist() {
	select {
	case s.kick <- struct{}{}:
	default:
		// ya hay una escritura pendiente que tomará el estado más nuevo
	}
}

func (s *Store) persistLoop() {
	for range s.kick {
		s.persist()
	}
}

func (s *Store) persist() {
	if s.local == nil {
		return
	}
	d := s.Get()
	if err := s.local.SaveDraft(&d); err != nil {
		// nunca se le muestra al usuario; el borrador sigue en memoria
		log.Printf("draft: persist failed: %v", err)
	}
}

func apply(d *models.AppointmentDraft, p Patch) {
	if p.BranchID != nil {
		d.BranchID = *p.BranchID
	}
	if p.ServiceID != nil {
		d.ServiceID = *p.ServiceID
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.PlateType != nil {
		d.PlateType = *p.PlateType
	}
	if p.PlateNumber != nil {
		d.PlateNumber = *p.PlateNumber
	}
	if p.Brand != nil {
		d.Brand = *p.Brand
	}
	if p.Model != nil {
		d.Model = *p.Model
	}
	if p.ProblemDescription != nil {
		d.ProblemDescription = *p.ProblemDescription
	}
}

// Str es azúcar para armar un Patch en los handlers de las pantallas.
func Str(v string) *string { return &v }
