// Package checklist es el flujo del técnico: marcar pasos, anotar
// observaciones y empujar todo el checklist con su estado derivado al
// backend en una sola petición.
package checklist

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
	"github.com/TallerExpressCR/taller-app-core/internal/catalog"
	"github.com/TallerExpressCR/taller-app-core/internal/domain/repair"
	"github.com/TallerExpressCR/taller-app-core/internal/models"
	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

var (
	// ErrReadOnly: la cita ya está Completado o Cancelado; se muestra el
	// resumen de solo lectura, nunca el checklist editable.
	ErrReadOnly = errors.New("appointment is read-only")

	// ErrUnknownStep: el id no existe en el checklist de esta cita.
	ErrUnknownStep = errors.New("unknown checklist step")

	// ErrAuthorizationRequired: el paso exige autorización del cliente y
	// todavía no está otorgada.
	ErrAuthorizationRequired = errors.New("step requires client authorization")

	// ErrSavedLocallyOnly: el avance quedó en el cache local pero el
	// backend no lo recibió. Es advertencia reintentable, no fallo duro.
	ErrSavedLocallyOnly = errors.New("checklist saved locally but not synced")
)

type Session struct {
	mu sync.Mutex

	quote models.Appointment
	steps []models.StepRecord

	technician       string
	generalNotes     string
	additionalIssues string

	client *api.Client
	store  *storage.Store // puede ser nil en pruebas
}

// NewSession abre el checklist de una cita editable. Si la cita todavía no
// trae pasos (recién creada), se instancian desde el catálogo según el
// nombre del servicio; si el nombre no resuelve, la sesión queda sin pasos y
// la vista muestra "sin pasos definidos".
func NewSession(ap models.Appointment, client *api.Client, store *storage.Store) (*Session, error) {
	if !repair.CanEdit(repair.Status(ap.Status)) {
		return nil, ErrReadOnly
	}

	steps := make([]models.StepRecord, len(ap.Steps))
	copy(steps, ap.Steps)

	if len(steps) == 0 {
		if id := catalog.ResolveServiceName(ap.ServiceName); id != "" {
			steps = catalog.InstantiateSteps(id)
		}
	}

	return &Session{
		quote:            ap,
		steps:            steps,
		technician:       ap.TechnicianName,
		generalNotes:     ap.InternalNotes,
		additionalIssues: ap.AdditionalIssues,
		client:           client,
		store:            store,
	}, nil
}

// Steps devuelve una copia del estado actual de los pasos.
func (s *Session) Steps() []models.StepRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StepRecord, len(s.steps))
	copy(out, s.steps)
	return out
}

// HasSteps distingue "checklist vacío" del caso sin catálogo.
func (s *Session) HasSteps() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps) > 0
}

func (s *Session) find(stepID string) int {
	for i := range s.steps {
		if s.steps[i].ID == stepID {
			return i
		}
	}
	return -1
}

// ToggleStep marca o desmarca un paso. Completar un paso que exige
// autorización del cliente se bloquea hasta que esté otorgada, ya sea en el
// paso mismo o a nivel de cita (autorización de trabajos adicionales).
func (s *Session) ToggleStep(stepID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(stepID)
	if i < 0 {
		return ErrUnknownStep
	}

	if completed && s.steps[i].RequiresAuthorization && !s.steps[i].AuthorizationGranted {
		quoteLevel := s.quote.ClientAuthorizedAdditional != nil && *s.quote.ClientAuthorizedAdditional
		if !quoteLevel {
			return ErrAuthorizationRequired
		}
	}

	s.steps[i].Completed = completed
	return nil
}

// GrantStepAuthorization registra que el cliente autorizó el paso.
func (s *Session) GrantStepAuthorization(stepID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(stepID)
	if i < 0 {
		return ErrUnknownStep
	}
	s.steps[i].AuthorizationGranted = true
	return nil
}

// SetStepNotes anota observaciones en un paso puntual.
func (s *Session) SetStepNotes(stepID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(stepID)
	if i < 0 {
		return ErrUnknownStep
	}
	s.steps[i].Notes = notes
	return nil
}

func (s *Session) SetTechnician(name string) {
	s.mu.Lock()
	s.technician = name
	s.mu.Unlock()
}

func (s *Session) SetGeneralNotes(notes string) {
	s.mu.Lock()
	s.generalNotes = notes
	s.mu.Unlock()
}

func (s *Session) SetAdditionalIssues(text string) {
	s.mu.Lock()
	s.additionalIssues = text
	s.mu.Unlock()
}

// DerivedStatus es el estado que se enviará al guardar: Completado solo con
// todos los pasos marcados, En proceso en cualquier otro caso.
func (s *Session) DerivedStatus() repair.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return repair.DerivedStatus(s.steps)
}

// PendingCount alimenta la confirmación "¿guardar como en proceso?" cuando
// el técnico finaliza con pasos sin marcar.
func (s *Session) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps) - repair.CompletedCount(s.steps)
}

// ConsolidatedNotes junta las observaciones generales con las de cada paso,
// cada una con el prefijo de su descripción.
func (s *Session) ConsolidatedNotes() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return consolidate(s.generalNotes, s.steps)
}

func consolidate(general string, steps []models.StepRecord) string {
	parts := make([]string, 0, len(steps)+1)
	if strings.TrimSpace(general) != "" {
		parts = append(parts, strings.TrimSpace(general))
	}
	for _, st := range steps {
		if strings.TrimSpace(st.Notes) == "" {
			continue
		}
		parts = append(parts, st.Description+": "+strings.TrimSpace(st.Notes))
	}
	return strings.Join(parts, "\n")
}

// Save persiste el avance: primero el cache local (fallos solo se registran,
// política de almacenamiento local), después el PATCH con técnico, notas
// consolidadas, ambas formas legadas del checklist y el estado derivado. Si
// el PATCH falla devuelve ErrSavedLocallyOnly para que la pantalla ofrezca
// reintentar sin perder nada.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	quoteID := s.quote.ID
	steps := make([]models.StepRecord, len(s.steps))
	copy(steps, s.steps)
	technician := s.technician
	notes := consolidate(s.generalNotes, s.steps)
	additional := s.additionalIssues
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveChecklist(quoteID, steps); err != nil {
			log.Printf("checklist: local cache write failed: %v", err)
		}
	}

	derived := string(repair.DerivedStatus(steps))

	patch := api.QuotePatch{
		Status:     &derived,
		Technician: &technician,
		Notes:      &notes,
		Steps:      steps,
	}
	if additional != "" {
		patch.AdditionalIssues = &additional
	}
	if len(steps) > 0 && steps[0].ServiceID != "" {
		patch.ServiceID = &steps[0].ServiceID
	}

	if err := s.client.PatchQuote(ctx, quoteID, patch); err != nil {
		return errors.WithMessagef(ErrSavedLocallyOnly, "sync failed: %v", err)
	}

	s.mu.Lock()
	s.quote.Status = derived
	s.mu.Unlock()
	return nil
}
