package repair

import "strings"

// ===============================
// Estado de la reparación
// ===============================

// Status usa los valores de despliegue en español tal cual los guarda el
// backend; no existe una representación interna aparte.
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInProgress Status = "En proceso"
	StatusCompleted  Status = "Completado"
	StatusCancelled  Status = "Cancelado"
)

// ParseStatus tolera los alias que devuelven las rutas viejas del backend
// (minúsculas, variantes en inglés). Un valor desconocido queda en Pendiente.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pendiente", "pending":
		return StatusPending
	case "en proceso", "en_proceso", "in progress", "in_progress":
		return StatusInProgress
	case "completado", "completed", "finalizado":
		return StatusCompleted
	case "cancelado", "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// ===============================
// Validaciones
// ===============================

// IsTerminal indica que la cita ya no admite ediciones de ningún tipo.
// El estado manda: una cita "Completado" con pasos pendientes sigue siendo
// terminal (inconsistencia del servidor que se muestra, no se corrige).
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanEdit define si el checklist de la cita todavía se puede mutar.
func CanEdit(s Status) bool {
	return s == StatusPending || s == StatusInProgress
}

// InitialStatus es el estado con el que nace toda cita recién enviada.
func InitialStatus() Status {
	return StatusPending
}
