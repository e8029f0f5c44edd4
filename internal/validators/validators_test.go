package validators

import "testing"

func TestIsPlateValid(t *testing.T) {
	tests := []struct {
		plateType string
		plate     string
		want      bool
	}{
		{"particular", "ABC123", true},
		{"particular", "ABC-123", true},
		{"particular", "abc123", true}, // se normaliza a mayúsculas
		{"particular", " ABC123 ", true},
		{"particular", "123456", true}, // formato viejo de solo dígitos
		{"particular", "AB123", false},
		{"particular", "ABCD123", false},
		{"particular", "ABC12", false},
		{"particular", "", false},

		{"especial", "CL123456", true},
		{"especial", "CL-123456", true},
		{"especial", "MOT-4521", true},
		{"especial", "TX1", true},
		{"especial", "C1", false},
		{"especial", "CL1234567", false},
		{"placa especial", "CL-88", true},

		// tipo desconocido: solo exige no-vacía
		{"otro", "LO-QUE-SEA", true},
		{"otro", "   ", false},
	}

	for _, tt := range tests {
		if got := IsPlateValid(tt.plateType, tt.plate); got != tt.want {
			t.Errorf("IsPlateValid(%q, %q) = %v, want %v", tt.plateType, tt.plate, got, tt.want)
		}
	}
}

func TestIsEmailShaped(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"tecnico@taller.co.cr", true},
		{"sin-arroba.com", false},
		{"@example.com", false},
		{"maria@", false},
		{"maria@sinpunto", false},
		{"con espacio@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmailShaped(tt.email); got != tt.want {
			t.Errorf("IsEmailShaped(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
