package api

import (
	"encoding/json"
	"strings"

	"github.com/TallerExpressCR/taller-app-core/internal/domain/repair"
	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

// flexString acepta ids que el backend manda a veces como string y a veces
// como número (las rutas viejas serializan los ids numéricos sin comillas).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// wireStep cubre las dos generaciones de nombres de campo de un paso.
type wireStep struct {
	ID flexString `json:"id"`

	Descripcion string `json:"descripcion"`
	Description string `json:"description"`

	Completado *bool `json:"completado"`
	Completed  *bool `json:"completed"`

	ServicioID flexString `json:"servicio_id"`
	ServiceID  flexString `json:"serviceId"`

	Notas string `json:"notas"`
	Notes string `json:"notes"`

	RequiereAutorizacion *bool `json:"requiere_autorizacion"`
	RequiresAuth         *bool `json:"requiresAuthorization"`

	Autorizacion *bool `json:"autorizacion"`
	AuthGranted  *bool `json:"authorizationGranted"`
}

// wireChecklist es la forma vieja: checklist_data.pasos.
type wireChecklist struct {
	Pasos      []wireStep `json:"pasos"`
	ServicioID flexString `json:"servicio_id"`
}

// wireQuote es la cita tal cual llega del backend, con ambos juegos de alias.
type wireQuote struct {
	ID flexString `json:"id"`

	Servicio    string `json:"servicio"`
	ServiceName string `json:"serviceName"`

	Nombre     string `json:"nombre"`
	ClientName string `json:"clientName"`

	Correo      string `json:"correo"`
	ClientEmail string `json:"clientEmail"`

	Telefono    string `json:"telefono"`
	ClientPhone string `json:"clientPhone"`

	Provincia string `json:"provincia"`
	Province  string `json:"province"`
	Canton    string `json:"canton"`
	Distrito  string `json:"distrito"`
	District  string `json:"district"`

	Sucursal string `json:"sucursal"`
	Branch   string `json:"branch"`

	Fecha string `json:"fecha"`
	Date  string `json:"date"`

	Hora    string `json:"hora"`
	TimeAlt string `json:"time"`

	TipoPlaca string `json:"tipo_placa"`
	PlateType string `json:"plateType"`

	Placa       string `json:"placa"`
	PlateNumber string `json:"plateNumber"`

	Marca string `json:"marca"`
	Brand string `json:"brand"`

	Modelo   string `json:"modelo"`
	ModelAlt string `json:"model"`

	Problema           string `json:"problema"`
	ProblemDescription string `json:"problemDescription"`

	Estado string `json:"estado"`
	Status string `json:"status"`

	Tecnico        string `json:"tecnico"`
	TechnicianName string `json:"technicianName"`

	ProblemasAdicionales string `json:"problemas_adicionales"`
	AdditionalIssues     string `json:"additionalIssues"`

	AutorizacionCliente *bool `json:"autorizacion_cliente"`
	ClientAuthorized    *bool `json:"clientAuthorizedAdditional"`

	Observaciones string `json:"observaciones"`
	InternalNotes string `json:"internalNotes"`

	// Las dos formas legadas del checklist. reparaciones_list es la nueva;
	// cuando viene (aunque sea vacía) manda sobre checklist_data.pasos.
	ReparacionesList []wireStep     `json:"reparaciones_list"`
	ChecklistData    *wireChecklist `json:"checklist_data"`

	ServicioID flexString `json:"servicio_id"`
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func coalesceBool(a, b *bool) bool {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return false
}

func normalizeStep(w wireStep) models.StepRecord {
	return models.StepRecord{
		ID:                    string(w.ID),
		Description:           coalesce(w.Descripcion, w.Description),
		Completed:             coalesceBool(w.Completado, w.Completed),
		ServiceID:             coalesce(string(w.ServicioID), string(w.ServiceID)),
		Notes:                 coalesce(w.Notas, w.Notes),
		RequiresAuthorization: coalesceBool(w.RequiereAutorizacion, w.RequiresAuth),
		AuthorizationGranted:  coalesceBool(w.Autorizacion, w.AuthGranted),
	}
}

// normalizeQuote reduce la respuesta del backend a la proyección canónica.
// Es el único punto del código que conoce los alias y las formas legadas.
func normalizeQuote(w wireQuote) models.Appointment {
	ap := models.Appointment{
		ID:          string(w.ID),
		ServiceName: coalesce(w.Servicio, w.ServiceName),
		ClientName:  coalesce(w.Nombre, w.ClientName),
		ClientEmail: coalesce(w.Correo, w.ClientEmail),
		ClientPhone: coalesce(w.Telefono, w.ClientPhone),
		ClientLocation: models.Location{
			Province: coalesce(w.Provincia, w.Province),
			Canton:   w.Canton,
			District: coalesce(w.Distrito, w.District),
		},
		Branch:             coalesce(w.Sucursal, w.Branch),
		Date:               coalesce(w.Fecha, w.Date),
		Time:               coalesce(w.Hora, w.TimeAlt),
		PlateType:          coalesce(w.TipoPlaca, w.PlateType),
		PlateNumber:        coalesce(w.Placa, w.PlateNumber),
		Brand:              coalesce(w.Marca, w.Brand),
		Model:              coalesce(w.Modelo, w.ModelAlt),
		ProblemDescription: coalesce(w.Problema, w.ProblemDescription),
		Status:             string(repair.ParseStatus(coalesce(w.Estado, w.Status))),
		TechnicianName:     coalesce(w.Tecnico, w.TechnicianName),
		AdditionalIssues:   coalesce(w.ProblemasAdicionales, w.AdditionalIssues),
		InternalNotes:      coalesce(w.Observaciones, w.InternalNotes),
	}

	if w.AutorizacionCliente != nil {
		ap.ClientAuthorizedAdditional = w.AutorizacionCliente
	} else if w.ClientAuthorized != nil {
		ap.ClientAuthorizedAdditional = w.ClientAuthorized
	}

	var steps []wireStep
	switch {
	case w.ReparacionesList != nil:
		steps = w.ReparacionesList
	case w.ChecklistData != nil:
		steps = w.ChecklistData.Pasos
	}
	if steps != nil {
		ap.Steps = make([]models.StepRecord, len(steps))
		for i, s := range steps {
			ap.Steps[i] = normalizeStep(s)
			if ap.Steps[i].ServiceID == "" && w.ChecklistData != nil {
				ap.Steps[i].ServiceID = string(w.ChecklistData.ServicioID)
			}
		}
	}

	return ap
}

// wireUser cubre los alias del perfil de usuario.
type wireUser struct {
	ID       flexString `json:"id"`
	Nombre   string     `json:"nombre"`
	Name     string     `json:"name"`
	Correo   string     `json:"correo"`
	Email    string     `json:"email"`
	Telefono string     `json:"telefono"`
	Phone    string     `json:"phone"`
	Role     string     `json:"role"`
}

func normalizeUser(w wireUser) models.User {
	return models.User{
		ID:    string(w.ID),
		Name:  coalesce(w.Nombre, w.Name),
		Email: coalesce(w.Correo, w.Email),
		Phone: coalesce(w.Telefono, w.Phone),
		Role:  w.Role,
	}
}

// outStep es la forma con la que escribimos pasos hacia el backend: siempre
// los nombres snake_case, que son los que entienden ambas generaciones.
type outStep struct {
	ID                   string `json:"id"`
	Descripcion          string `json:"descripcion"`
	Completado           bool   `json:"completado"`
	ServicioID           string `json:"servicio_id,omitempty"`
	Notas                string `json:"notas,omitempty"`
	RequiereAutorizacion bool   `json:"requiere_autorizacion,omitempty"`
	Autorizacion         bool   `json:"autorizacion,omitempty"`
}

func toWireSteps(steps []models.StepRecord) []outStep {
	out := make([]outStep, len(steps))
	for i, s := range steps {
		out[i] = outStep{
			ID:                   s.ID,
			Descripcion:          s.Description,
			Completado:           s.Completed,
			ServicioID:           s.ServiceID,
			Notas:                s.Notes,
			RequiereAutorizacion: s.RequiresAuthorization,
			Autorizacion:         s.AuthorizationGranted,
		}
	}
	return out
}
