package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

// quoteEnvelope cubre GET /quotes/:id, que según la ruta responde
// {quote: {...}} o la cita pelada. Se intenta primero el sobre.
type quoteEnvelope struct {
	Quote *wireQuote `json:"quote"`
}

// GetQuote trae una cita ya normalizada.
func (c *Client) GetQuote(ctx context.Context, id string) (*models.Appointment, error) {
	raw, err := c.do(ctx, http.MethodGet, "/quotes/"+id, nil)
	if err != nil {
		return nil, err
	}

	var env quoteEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Quote != nil {
		ap := normalizeQuote(*env.Quote)
		return &ap, nil
	}

	var w wireQuote
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrap(err, "decode quote")
	}
	ap := normalizeQuote(w)
	return &ap, nil
}

type quoteListEnvelope struct {
	Quotes []wireQuote `json:"quotes"`
}

// ListQuotes trae todas las citas visibles para la sesión.
func (c *Client) ListQuotes(ctx context.Context) ([]models.Appointment, error) {
	raw, err := c.do(ctx, http.MethodGet, "/quotes", nil)
	if err != nil {
		return nil, err
	}

	var wires []wireQuote
	if err := json.Unmarshal(raw, &wires); err != nil {
		var env quoteListEnvelope
		if err2 := json.Unmarshal(raw, &env); err2 != nil {
			return nil, errors.Wrap(err, "decode quote list")
		}
		wires = env.Quotes
	}

	out := make([]models.Appointment, len(wires))
	for i, w := range wires {
		out[i] = normalizeQuote(w)
	}
	return out, nil
}

// Filter son los criterios de filtrado del lado del cliente del listado.
type Filter struct {
	Date  string // igualdad exacta "2006-01-02"
	Email string // igualdad sin distinguir mayúsculas
	Name  string // contención sin distinguir mayúsculas
}

// FilterQuotes aplica los criterios no vacíos sobre la lista ya descargada.
func FilterQuotes(list []models.Appointment, f Filter) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		if f.Email != "" && !strings.EqualFold(ap.ClientEmail, f.Email) {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(ap.ClientName), strings.ToLower(f.Name)) {
			continue
		}
		out = append(out, ap)
	}
	return out
}

// QuotePatch es la actualización parcial de PATCH /quotes/:id. Solo los
// campos no-nil viajan; Steps != nil escribe las dos formas legadas del
// checklist en la misma petición para no romper versiones viejas.
type QuotePatch struct {
	Status           *string
	Technician       *string
	Notes            *string
	AdditionalIssues *string
	ClientAuthorized *bool
	ServiceID        *string
	Steps            []models.StepRecord
}

// PatchQuote envía la actualización parcial en una sola petición.
func (c *Client) PatchQuote(ctx context.Context, id string, p QuotePatch) error {
	body := map[string]any{}

	if p.Status != nil {
		body["status"] = *p.Status
	}
	if p.Technician != nil {
		body["tecnico"] = *p.Technician
	}
	if p.Notes != nil {
		body["observaciones"] = *p.Notes
	}
	if p.AdditionalIssues != nil {
		body["problemas_adicionales"] = *p.AdditionalIssues
	}
	if p.ClientAuthorized != nil {
		body["autorizacion_cliente"] = *p.ClientAuthorized
	}
	if p.ServiceID != nil {
		body["servicio_id"] = *p.ServiceID
	}
	if p.Steps != nil {
		ws := toWireSteps(p.Steps)
		body["reparaciones_list"] = ws
		cd := map[string]any{"pasos": ws}
		if p.ServiceID != nil {
			cd["servicio_id"] = *p.ServiceID
		} else if len(p.Steps) > 0 && p.Steps[0].ServiceID != "" {
			cd["servicio_id"] = p.Steps[0].ServiceID
		}
		body["checklist_data"] = cd
	}

	if len(body) == 0 {
		return errors.New("patch quote: empty update")
	}

	_, err := c.do(ctx, http.MethodPatch, "/quotes/"+id, body)
	return err
}

// QuoteSubmission es el cuerpo de POST /quotes: el borrador completo más los
// datos de contacto de la sesión.
type QuoteSubmission struct {
	BranchID           string `json:"sucursal_id"`
	ServiceID          string `json:"servicio_id"`
	Date               string `json:"fecha"`
	Time               string `json:"hora"`
	PlateType          string `json:"tipo_placa"`
	PlateNumber        string `json:"placa"`
	Brand              string `json:"marca"`
	Model              string `json:"modelo"`
	ProblemDescription string `json:"problema"`

	ClientName  string `json:"nombre"`
	ClientEmail string `json:"correo"`
	ClientPhone string `json:"telefono"`
}

// SubmitQuote crea la cita a partir del borrador y devuelve la proyección
// que responde el backend.
func (c *Client) SubmitQuote(ctx context.Context, sub QuoteSubmission) (*models.Appointment, error) {
	raw, err := c.do(ctx, http.MethodPost, "/quotes", sub)
	if err != nil {
		return nil, err
	}

	var env quoteEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Quote != nil {
		ap := normalizeQuote(*env.Quote)
		return &ap, nil
	}

	var w wireQuote
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrap(err, "decode created quote")
	}
	ap := normalizeQuote(w)
	return &ap, nil
}
