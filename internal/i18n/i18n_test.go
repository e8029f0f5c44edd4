package i18n

import (
	"path/filepath"
	"testing"

	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"es", "es"},
		{"en", "en"},
		{"EN", "en"},
		{" es-CR ", "es"},
		{"en_US", "en"},
		{"fr", "es"},
		{"", "es"},
		{"pt-BR", "es"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"es", "book_appointment", "Agendar cita"},
		{"en", "book_appointment", "Book appointment"},
		{"es-CR", "track_repair", "Seguimiento de reparación"},
		{"fr", "logout", "Cerrar sesión"}, // idioma desconocido cae a español
		{"en", "clave_inexistente", "clave_inexistente"},
	}
	for _, tt := range tests {
		if got := T(tt.lang, tt.key); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

// Toda clave en español debe existir también en inglés, y al revés.
func TestTranslationTablesAligned(t *testing.T) {
	for key := range translations["es"] {
		if _, ok := translations["en"][key]; !ok {
			t.Errorf("key %q missing in en", key)
		}
	}
	for key := range translations["en"] {
		if _, ok := translations["es"][key]; !ok {
			t.Errorf("key %q missing in es", key)
		}
	}
}

func TestPreference(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	p := NewPreference(store)
	if got := p.Language(); got != DefaultLang {
		t.Fatalf("default = %q", got)
	}

	p.SetLanguage("en-US")
	if got := p.Language(); got != "en" {
		t.Fatalf("after set = %q", got)
	}

	p.SetLanguage("klingon")
	if got := p.Language(); got != DefaultLang {
		t.Fatalf("unsupported tag = %q", got)
	}
}

func TestPreferenceWithoutStore(t *testing.T) {
	p := NewPreference(nil)
	if got := p.Language(); got != DefaultLang {
		t.Fatalf("nil store = %q", got)
	}
	p.SetLanguage("en") // no debe reventar
}
