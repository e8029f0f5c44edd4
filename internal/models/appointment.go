package models

// Location es la ubicación del cliente según la división territorial.
type Location struct {
	Province string `json:"province"`
	Canton   string `json:"canton"`
	District string `json:"district"`
}

// StepRecord es la copia por-cita de un paso del checklist. Diverge del
// template del catálogo en cuanto el técnico empieza a trabajar.
type StepRecord struct {
	ID                    string `json:"id"`
	Description           string `json:"description"`
	Completed             bool   `json:"completed"`
	ServiceID             string `json:"service_id,omitempty"`
	Notes                 string `json:"notes,omitempty"`
	RequiresAuthorization bool   `json:"requires_authorization,omitempty"`
	AuthorizationGranted  bool   `json:"authorization_granted,omitempty"`
}

// Appointment es la proyección canónica de una cita. El backend responde con
// dos juegos de alias (snake_case y camelCase) y dos formas legadas del
// checklist; todo eso se resuelve en el adaptador de internal/api y el resto
// del código solo ve este tipo.
type Appointment struct {
	ID          string `json:"id"`
	ServiceName string `json:"service_name"`

	ClientName     string   `json:"client_name"`
	ClientEmail    string   `json:"client_email"`
	ClientPhone    string   `json:"client_phone"`
	ClientLocation Location `json:"client_location"`

	Branch string `json:"branch"`
	Date   string `json:"date"` // "2006-01-02"
	Time   string `json:"time"` // "15:04"

	PlateType   string `json:"plate_type"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`

	ProblemDescription string `json:"problem_description"`

	Status         string `json:"status"`
	TechnicianName string `json:"technician_name"`

	AdditionalIssues           string `json:"additional_issues"`
	ClientAuthorizedAdditional *bool  `json:"client_authorized_additional,omitempty"`

	InternalNotes string `json:"internal_notes"`

	Steps []StepRecord `json:"steps"`
}

// User es el perfil de la sesión autenticada.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Branch es una sucursal del taller.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Province string `json:"province"`
	Phone    string `json:"phone"`
	Schedule string `json:"schedule"`
}

// ServiceCategory agrupa servicios para el catálogo de la app.
type ServiceCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

// AppointmentDraft es el borrador local de la cita, armado pantalla por
// pantalla en el asistente de reserva. Nunca viaja al backend tal cual.
type AppointmentDraft struct {
	BranchID           string `json:"branchId"`
	ServiceID          string `json:"serviceId"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	PlateType          string `json:"plateType"`
	PlateNumber        string `json:"plateNumber"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	ProblemDescription string `json:"problemDescription"`
}

// Vehicle es el resultado de la consulta de placas.
type Vehicle struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}
