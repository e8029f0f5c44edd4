// Package i18n maneja el idioma de la interfaz. Español es el idioma por
// defecto y el de respaldo; inglés se ofrece como alternativa.
package i18n

import (
	"log"
	"strings"

	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

const DefaultLang = "es"

var supported = map[string]bool{"es": true, "en": true}

var translations = map[string]map[string]string{
	"es": {
		"book_appointment": "Agendar cita",
		"my_appointments": "Mis citas",
		"track_repair": "Seguimiento de reparación",
		"branches": "Sucursales",
		"next": "Siguiente",
		"submit": "Enviar",
		"retry": "Reintentar",
		"go_back": "Volver",
		"no_steps": "Sin pasos definidos",
		"updated": "El técnico actualizó tu reparación",
		"authorize_work": "Autorizar trabajos adicionales",
		"save_in_progress": "¿Guardar como en proceso?",
		"saved_locally": "Guardado localmente, pendiente de sincronizar",
		"plate_not_found": "Placa no encontrada",
		"connection_error": "Error de conexión, intente de nuevo",
		"profile": "Perfil",
		"logout": "Cerrar sesión",
	},
	"en": {
		"book_appointment": "Book appointment",
		"my_appointments": "My appointments",
		"track_repair": "Repair tracking",
		"branches": "Branches",
		"next": "Next",
		"submit": "Submit",
		"retry": "Retry",
		"go_back": "Go back",
		"no_steps": "No steps defined",
		"updated": "The technician updated your repair",
		"authorize_work": "Authorize additional work",
		"save_in_progress": "Save as in progress?",
		"saved_locally": "Saved locally, pending sync",
		"plate_not_found": "Plate not found",
		"connection_error": "Connection error, try again",
		"profile": "Profile",
		"logout": "Log out",
	},
}

// Normalize reduce una etiqueta tipo "es-CR" o "EN" al código soportado,
// con español como respaldo.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_,;"); i >= 0 {
		tag = tag[:i]
	}
	if supported[tag] {
		return tag
	}
	return DefaultLang
}

// T traduce una clave. Idioma desconocido cae a español; clave desconocida
// devuelve la clave misma para que el hueco se note en pantalla.
func T(lang, key string) string {
	table, ok := translations[Normalize(lang)]
	if !ok {
		table = translations[DefaultLang]
	}
	if v, ok := table[key]; ok {
		return v
	}
	if v, ok := translations[DefaultLang][key]; ok {
		return v
	}
	return key
}

// Preference es la preferencia de idioma persistida del dispositivo.
type Preference struct {
	store *storage.Store
}

func NewPreference(store *storage.Store) *Preference {
	return &Preference{store: store}
}

// Language devuelve el idioma guardado o el default.
func (p *Preference) Language() string {
	if p.store == nil {
		return DefaultLang
	}
	lang, err := p.store.Language()
	if err != nil {
		log.Printf("i18n: read preference failed: %v", err)
		return DefaultLang
	}
	if lang == "" {
		return DefaultLang
	}
	return Normalize(lang)
}

// SetLanguage persiste la preferencia; un fallo de escritura solo se
// registra y la preferencia queda en memoria de la vista.
func (p *Preference) SetLanguage(lang string) {
	if p.store == nil {
		return
	}
	if err := p.store.SaveLanguage(Normalize(lang)); err != nil {
		log.Printf("i18n: save preference failed: %v", err)
	}
}
