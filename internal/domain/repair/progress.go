package repair

import (
	"math"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

// CompletedCount cuenta los pasos marcados como completados.
func CompletedCount(steps []models.StepRecord) int {
	n := 0
	for _, s := range steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// Progress calcula el porcentaje redondeado de avance del checklist.
// Una lista vacía reporta 0 (nunca división entre cero).
func Progress(steps []models.StepRecord) int {
	total := len(steps)
	if total == 0 {
		return 0
	}
	done := CompletedCount(steps)
	return int(math.Round(100 * float64(done) / float64(total)))
}

// DerivedStatus es el estado que el técnico manda al guardar el checklist:
// Completado solo si absolutamente todos los pasos están marcados.
// Solo avanza; ningún flujo regresa una cita de Completado a En proceso.
func DerivedStatus(steps []models.StepRecord) Status {
	if len(steps) == 0 {
		return StatusInProgress
	}
	for _, s := range steps {
		if !s.Completed {
			return StatusInProgress
		}
	}
	return StatusCompleted
}
