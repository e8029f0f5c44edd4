package catalog

import "github.com/TallerExpressCR/taller-app-core/internal/models"

// Sucursales y categorías son datos de la app, no del backend: cambian con
// cada versión publicada, igual que los procesos.

var branches = []models.Branch{
	{ID: "1", Name: "San José Centro", Province: "San José", Phone: "2222-1001", Schedule: "L-V 7:30–17:30, S 8:00–12:00"},
	{ID: "2", Name: "Curridabat", Province: "San José", Phone: "2272-1002", Schedule: "L-V 7:30–17:30, S 8:00–12:00"},
	{ID: "3", Name: "Heredia", Province: "Heredia", Phone: "2260-1003", Schedule: "L-V 7:30–17:30"},
	{ID: "4", Name: "Alajuela", Province: "Alajuela", Phone: "2440-1004", Schedule: "L-V 7:30–17:30, S 8:00–12:00"},
	{ID: "5", Name: "Cartago", Province: "Cartago", Phone: "2551-1005", Schedule: "L-V 7:30–17:30"},
}

var categories = []models.ServiceCategory{
	{ID: "diagnostico", Name: "Diagnóstico", Services: []string{"scanner", "diagnostico_general", "super_evaluacion", "revision_rtv"}},
	{ID: "llantas", Name: "Llantas y dirección", Services: []string{"alineado", "tramado"}},
	{ID: "mantenimiento", Name: "Mantenimiento", Services: []string{"cambio_aceite", "mantenimiento_completo"}},
	{ID: "sistemas", Name: "Frenos y suspensión", Services: []string{"frenos", "suspension"}},
}

// Branches devuelve las sucursales en orden de declaración.
func Branches() []models.Branch {
	out := make([]models.Branch, len(branches))
	copy(out, branches)
	return out
}

// GetBranch busca una sucursal por id; nil si no existe.
func GetBranch(id string) *models.Branch {
	for i := range branches {
		if branches[i].ID == id {
			return &branches[i]
		}
	}
	return nil
}

// Categories devuelve las categorías con sus servicios.
func Categories() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(categories))
	copy(out, categories)
	return out
}
