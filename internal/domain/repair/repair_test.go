package repair

import (
	"testing"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

func steps(completed ...bool) []models.StepRecord {
	out := make([]models.StepRecord, len(completed))
	for i, c := range completed {
		out[i] = models.StepRecord{ID: string(rune('a' + i)), Completed: c}
	}
	return out
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Pendiente", StatusPending},
		{"pendiente", StatusPending},
		{"En proceso", StatusInProgress},
		{"en_proceso", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"Completado", StatusCompleted},
		{"completed", StatusCompleted},
		{"Cancelado", StatusCancelled},
		{"canceled", StatusCancelled},
		{"  Completado  ", StatusCompleted},
		{"qué es esto", StatusPending},
		{"", StatusPending},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanEditAndIsTerminal(t *testing.T) {
	if !CanEdit(StatusPending) || !CanEdit(StatusInProgress) {
		t.Fatal("Pendiente and En proceso must be editable")
	}
	if CanEdit(StatusCompleted) || CanEdit(StatusCancelled) {
		t.Fatal("terminal states must not be editable")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusCancelled) {
		t.Fatal("Completado and Cancelado are terminal")
	}
	if IsTerminal(StatusPending) || IsTerminal(StatusInProgress) {
		t.Fatal("Pendiente and En proceso are not terminal")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		steps []models.StepRecord
		want  int
	}{
		{"empty list guards division", nil, 0},
		{"none done", steps(false, false, false), 0},
		{"3 of 10", steps(true, true, true, false, false, false, false, false, false, false), 30},
		{"4 of 10", steps(true, true, true, true, false, false, false, false, false, false), 40},
		{"1 of 3 rounds down", steps(true, false, false), 33},
		{"2 of 3 rounds up", steps(true, true, false), 67},
		{"1 of 6", steps(true, false, false, false, false, false), 17},
		{"all done", steps(true, true), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.steps); got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDerivedStatus(t *testing.T) {
	if got := DerivedStatus(steps(true, true, true)); got != StatusCompleted {
		t.Errorf("all completed => %q, want Completado", got)
	}
	if got := DerivedStatus(steps(true, false, true)); got != StatusInProgress {
		t.Errorf("one pending anywhere => %q, want En proceso", got)
	}
	if got := DerivedStatus(steps(false)); got != StatusInProgress {
		t.Errorf("single pending => %q, want En proceso", got)
	}
	// sin pasos no hay con qué declarar Completado
	if got := DerivedStatus(nil); got != StatusInProgress {
		t.Errorf("empty list => %q, want En proceso", got)
	}
}

func TestCompletedCount(t *testing.T) {
	if got := CompletedCount(steps(true, false, true, false)); got != 2 {
		t.Errorf("CompletedCount = %d, want 2", got)
	}
	if got := CompletedCount(nil); got != 0 {
		t.Errorf("CompletedCount(nil) = %d, want 0", got)
	}
}
