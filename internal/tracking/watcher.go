// Package tracking sigue una cita en reparación del lado del cliente: carga
// la proyección normalizada, calcula el avance del checklist y sondea el
// backend para aproximar una vista en vivo mientras la cita está En proceso.
package tracking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
	"github.com/TallerExpressCR/taller-app-core/internal/domain/repair"
	"github.com/TallerExpressCR/taller-app-core/internal/models"
	"github.com/TallerExpressCR/taller-app-core/internal/timezone"
)

// Snapshot es lo que la vista de seguimiento pinta en cada refresco.
type Snapshot struct {
	Appointment     models.Appointment
	CompletedCount  int
	TotalCount      int
	ProgressPercent int
	LastRefreshed   time.Time
}

// Notice es el aviso transitorio de "hay novedades del técnico". La UI lo
// muestra y lo descarta sola después de unos segundos.
type Notice struct {
	CompletedDelta int
	NotesChanged   bool
	At             time.Time
}

type Watcher struct {
	id      string
	quoteID string
	client  *api.Client

	interval time.Duration

	mu   sync.Mutex
	auto bool
	snap *Snapshot

	updates chan Notice
}

func NewWatcher(client *api.Client, quoteID string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 8 * time.Second
	}
	return &Watcher{
		id:       uuid.New().String(),
		quoteID:  quoteID,
		client:   client,
		interval: interval,
		// con buffer: si la UI no drena, se descartan avisos, nunca se
		// bloquea el loop de sondeo
		updates: make(chan Notice, 8),
	}
}

// Updates entrega los avisos de novedades detectadas por el sondeo.
func (w *Watcher) Updates() <-chan Notice {
	return w.updates
}

// Load hace la carga inicial. A diferencia del sondeo, un fallo aquí sí se
// propaga: la pantalla muestra el error con opción de volver.
func (w *Watcher) Load(ctx context.Context) (Snapshot, error) {
	ap, err := w.client.GetQuote(ctx, w.quoteID)
	if err != nil {
		return Snapshot{}, err
	}
	snap := buildSnapshot(*ap)

	w.mu.Lock()
	w.snap = &snap
	w.mu.Unlock()

	return snap, nil
}

// Snapshot devuelve la última vista conocida (zero value si nunca cargó).
func (w *Watcher) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.snap == nil {
		return Snapshot{}
	}
	return *w.snap
}

// SetAutoRefresh es la preferencia del usuario; el sondeo además exige que
// la cita siga En proceso.
func (w *Watcher) SetAutoRefresh(on bool) {
	w.mu.Lock()
	w.auto = on
	w.mu.Unlock()
}

func (w *Watcher) AutoRefresh() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.auto
}

func (w *Watcher) shouldPoll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.auto || w.snap == nil {
		return false
	}
	return repair.Status(w.snap.Appointment.Status) == repair.StatusInProgress
}

// Run es el loop de sondeo; se lanza en su propio goroutine y termina cuando
// el contexto muere (la pantalla se desmonta). Los ticks corren en secuencia
// dentro del loop: nunca hay dos peticiones de sondeo en vuelo a la vez.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.shouldPoll() {
				w.Tick(ctx)
			}
		}
	}
}

// Tick re-consulta la cita y compara contra la vista anterior. Solo un
// AUMENTO de pasos completados o un cambio en las observaciones generan
// aviso; una corrección a la baja se acepta en silencio. Un fallo del fetch
// también es silencioso: la vista se queda con datos viejos y el próximo
// tick reintenta.
func (w *Watcher) Tick(ctx context.Context) {
	ap, err := w.client.GetQuote(ctx, w.quoteID)
	if err != nil {
		log.Printf("tracking %s: poll tick for quote %s failed: %v", w.id, w.quoteID, err)
		return
	}

	snap := buildSnapshot(*ap)

	w.mu.Lock()
	prev := w.snap
	w.snap = &snap
	w.mu.Unlock()

	if prev == nil {
		return
	}

	delta := snap.CompletedCount - prev.CompletedCount
	notesChanged := snap.Appointment.InternalNotes != prev.Appointment.InternalNotes

	if delta > 0 || notesChanged {
		w.notify(Notice{
			CompletedDelta: delta,
			NotesChanged:   notesChanged,
			At:             snap.LastRefreshed,
		})
	}
}

func (w *Watcher) notify(n Notice) {
	select {
	case w.updates <- n:
	default:
		// la UI va atrasada; este aviso se pierde y no pasa nada
	}
}

// AuthorizeAdditionalWork marca la autorización del cliente para trabajos
// adicionales. Es de una sola vía: una vez otorgada no existe revocatoria,
// así que si la vista actual ya la tiene, no se vuelve a enviar.
func (w *Watcher) AuthorizeAdditionalWork(ctx context.Context) error {
	w.mu.Lock()
	already := w.snap != nil &&
		w.snap.Appointment.ClientAuthorizedAdditional != nil &&
		*w.snap.Appointment.ClientAuthorizedAdditional
	w.mu.Unlock()
	if already {
		return nil
	}

	authorized := true
	if err := w.client.PatchQuote(ctx, w.quoteID, api.QuotePatch{
		ClientAuthorized: &authorized,
	}); err != nil {
		return err
	}

	w.mu.Lock()
	if w.snap != nil {
		w.snap.Appointment.ClientAuthorizedAdditional = &authorized
	}
	w.mu.Unlock()
	return nil
}

func buildSnapshot(ap models.Appointment) Snapshot {
	return Snapshot{
		Appointment:     ap,
		CompletedCount:  repair.CompletedCount(ap.Steps),
		TotalCount:      len(ap.Steps),
		ProgressPercent: repair.Progress(ap.Steps),
		LastRefreshed:   timezone.NowIn(timezone.DefaultTimezone),
	}
}
