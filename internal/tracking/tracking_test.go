package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
)

// fakeBackend expone una cita mutable en el formato legado del backend.
type fakeBackend struct {
	mu        sync.Mutex
	completed int
	total     int
	status    string
	notes     string
	failNext  bool
	hits      int
}

func (f *fakeBackend) set(completed int, notes string) {
	f.mu.Lock()
	f.completed = completed
	f.notes = notes
	f.mu.Unlock()
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hits++

		if f.failNext {
			f.failNext = false
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		steps := make([]map[string]any, f.total)
		for i := range steps {
			steps[i] = map[string]any{
				"id":          fmt.Sprintf("s%02d", i+1),
				"descripcion": fmt.Sprintf("paso %d", i+1),
				"completado":  i < f.completed,
			}
		}
		resp := map[string]any{"quote": map[string]any{
			"id":                "q1",
			"estado":            f.status,
			"observaciones":     f.notes,
			"reparaciones_list": steps,
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestWatcher(t *testing.T, f *fakeBackend) (*Watcher, func()) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	w := NewWatcher(api.NewClient(srv.URL), "q1", time.Hour)
	return w, srv.Close
}

func drainNotices(w *Watcher) []Notice {
	var out []Notice
	for {
		select {
		case n := <-w.Updates():
			out = append(out, n)
		default:
			return out
		}
	}
}

// Escenario: 10 pasos, 3 completados => 30%; el técnico completa uno más y
// el siguiente tick reporta 40% con exactamente un aviso.
func TestLoadAndTickProgress(t *testing.T) {
	f := &fakeBackend{completed: 3, total: 10, status: "En proceso"}
	w, done := newTestWatcher(t, f)
	defer done()

	snap, err := w.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.ProgressPercent != 30 || snap.CompletedCount != 3 || snap.TotalCount != 10 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.LastRefreshed.IsZero() {
		t.Fatal("LastRefreshed not set")
	}

	f.set(4, "")
	w.Tick(context.Background())

	snap = w.Snapshot()
	if snap.ProgressPercent != 40 || snap.CompletedCount != 4 {
		t.Fatalf("after tick: %+v", snap)
	}

	notices := drainNotices(w)
	if len(notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(notices))
	}
	if notices[0].CompletedDelta != 1 || notices[0].NotesChanged {
		t.Fatalf("notice = %+v", notices[0])
	}
}

// Una corrección a la baja del técnico se acepta sin aviso.
func TestTickDecreaseIsSilent(t *testing.T) {
	f := &fakeBackend{completed: 5, total: 10, status: "En proceso"}
	w, done := newTestWatcher(t, f)
	defer done()

	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f.set(4, "")
	w.Tick(context.Background())

	if snap := w.Snapshot(); snap.CompletedCount != 4 {
		t.Fatalf("decrease not applied: %+v", snap)
	}
	if notices := drainNotices(w); len(notices) != 0 {
		t.Fatalf("decrease raised notices: %+v", notices)
	}
}

func TestTickNotesChangeNotifies(t *testing.T) {
	f := &fakeBackend{completed: 2, total: 5, status: "En proceso", notes: "revisión inicial"}
	w, done := newTestWatcher(t, f)
	defer done()

	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f.set(2, "se detectó fuga en amortiguador")
	w.Tick(context.Background())

	notices := drainNotices(w)
	if len(notices) != 1 || !notices[0].NotesChanged || notices[0].CompletedDelta != 0 {
		t.Fatalf("notices = %+v", notices)
	}
}

// Un tick fallido es silencioso: ni aviso ni pérdida de la vista anterior.
func TestTickFailureKeepsStaleSnapshot(t *testing.T) {
	f := &fakeBackend{completed: 3, total: 10, status: "En proceso"}
	w, done := newTestWatcher(t, f)
	defer done()

	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f.mu.Lock()
	f.failNext = true
	f.mu.Unlock()
	w.Tick(context.Background())

	if snap := w.Snapshot(); snap.CompletedCount != 3 {
		t.Fatalf("stale snapshot lost: %+v", snap)
	}
	if notices := drainNotices(w); len(notices) != 0 {
		t.Fatalf("failed tick notified: %+v", notices)
	}
}

func TestZeroStepsProgress(t *testing.T) {
	f := &fakeBackend{completed: 0, total: 0, status: "Pendiente"}
	w, done := newTestWatcher(t, f)
	defer done()

	snap, err := w.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.ProgressPercent != 0 || snap.TotalCount != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

// El sondeo solo corre con auto-refresh activo Y la cita En proceso.
func TestShouldPollGate(t *testing.T) {
	f := &fakeBackend{completed: 1, total: 4, status: "En proceso"}
	w, done := newTestWatcher(t, f)
	defer done()

	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if w.shouldPoll() {
		t.Fatal("polls with auto-refresh off")
	}
	w.SetAutoRefresh(true)
	if !w.shouldPoll() {
		t.Fatal("does not poll when enabled and in progress")
	}

	// la cita sale de En proceso => el gate se cierra solo
	f.mu.Lock()
	f.status = "Completado"
	f.mu.Unlock()
	w.Tick(context.Background())
	if w.shouldPoll() {
		t.Fatal("still polling after Completado")
	}

	w.SetAutoRefresh(false)
	if w.shouldPoll() {
		t.Fatal("polling after toggle off")
	}
}

func TestRunStopsWithContext(t *testing.T) {
	f := &fakeBackend{completed: 1, total: 4, status: "En proceso"}
	srv := httptest.NewServer(f.handler())
	defer srv.Close()

	w := NewWatcher(api.NewClient(srv.URL), "q1", 5*time.Millisecond)
	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	w.SetAutoRefresh(true)

	ctx, cancel := context.WithCancel(context.Background())
	doneCh := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(doneCh)
	}()

	time.Sleep(40 * time.Millisecond)
	cancel()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}

	f.mu.Lock()
	hits := f.hits
	f.mu.Unlock()
	if hits < 2 {
		t.Fatalf("expected polling hits, got %d", hits)
	}
}

func TestAuthorizeAdditionalWorkIsOneWay(t *testing.T) {
	var patches int
	var mu sync.Mutex

	authorized := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.Method == http.MethodPatch {
			patches++
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if v, ok := body["autorizacion_cliente"].(bool); ok {
				authorized = v
			}
			_, _ = w.Write([]byte(`{}`))
			return
		}
		resp := map[string]any{"quote": map[string]any{
			"id":                   "q1",
			"estado":               "En proceso",
			"autorizacion_cliente": authorized,
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	w := NewWatcher(api.NewClient(srv.URL), "q1", time.Hour)
	if _, err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := w.AuthorizeAdditionalWork(context.Background()); err != nil {
		t.Fatalf("authorize: %v", err)
	}
	// terminal: una segunda llamada no vuelve a enviar el PATCH
	if err := w.AuthorizeAdditionalWork(context.Background()); err != nil {
		t.Fatalf("authorize again: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if patches != 1 {
		t.Fatalf("patches = %d, want 1", patches)
	}
	if !authorized {
		t.Fatal("authorization not recorded")
	}
}
