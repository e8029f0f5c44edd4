// Package catalog define los procesos de servicio del taller: para cada tipo
// de servicio, la lista ordenada de pasos que el técnico sigue en el área de
// trabajo. El catálogo es estático; cada cita recibe su propia copia de los
// pasos y a partir de ahí evolucionan por separado.
package catalog

import (
	"strings"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

type ServiceProcess struct {
	ID          string
	DisplayName string
	Steps       []models.StepRecord
}

// GetProcess busca un proceso por su id canónico. Devuelve nil si no existe;
// la vista del checklist debe mostrar "sin pasos definidos" en ese caso.
func GetProcess(id string) *ServiceProcess {
	for i := range processes {
		if processes[i].ID == id {
			return &processes[i]
		}
	}
	return nil
}

// Processes devuelve el catálogo completo en orden de declaración.
func Processes() []ServiceProcess {
	out := make([]ServiceProcess, len(processes))
	copy(out, processes)
	return out
}

// InstantiateSteps entrega una copia profunda de los pasos del proceso para
// adjuntarla a una cita nueva. Mutar la copia jamás toca el template ni la
// copia de otra cita.
func InstantiateSteps(id string) []models.StepRecord {
	p := GetProcess(id)
	if p == nil {
		return nil
	}
	steps := make([]models.StepRecord, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = s
		steps[i].ServiceID = p.ID
	}
	return steps
}

// ResolveServiceName mapea el nombre libre de un servicio (viene como texto
// de varias fuentes) al id canónico del catálogo. La búsqueda es por
// contención de substring contra una tabla ordenada de palabras clave: gana
// la primera entrada que calce, en el orden en que está declarada la tabla.
// Devuelve "" si ninguna palabra clave aparece en el texto.
func ResolveServiceName(freeText string) string {
	needle := normalize(freeText)
	if needle == "" {
		return ""
	}
	for _, entry := range keywordTable {
		if strings.Contains(needle, entry.keyword) {
			return entry.processID
		}
	}
	return ""
}

// normalize baja a minúsculas, descarta los paréntesis con su contenido y
// quita tildes para que la comparación sea insensible a acentos.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripParens(s)
	return stripAccents(s)
}

func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

var accentFold = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
	"ñ", "n",
)

func stripAccents(s string) string {
	return accentFold.Replace(s)
}
