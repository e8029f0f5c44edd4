// Package booking enlaza el final del asistente de reserva: toma el
// borrador completo, le suma los datos de contacto de la sesión y lo envía
// al backend. Si todo sale bien, el borrador se limpia.
package booking

import (
	"context"

	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
	"github.com/TallerExpressCR/taller-app-core/internal/draft"
	"github.com/TallerExpressCR/taller-app-core/internal/models"
	"github.com/TallerExpressCR/taller-app-core/internal/session"
)

// ErrDraftIncomplete: el asistente no debería llegar aquí con campos vacíos;
// la completitud es la que habilita el botón de envío.
var ErrDraftIncomplete = errors.New("appointment draft is incomplete")

type Submitter struct {
	client  *api.Client
	drafts  *draft.Store
	session *session.Manager
}

func NewSubmitter(client *api.Client, drafts *draft.Store, sess *session.Manager) *Submitter {
	return &Submitter{client: client, drafts: drafts, session: sess}
}

// Submit envía el borrador y lo limpia si el backend creó la cita. Un fallo
// del envío deja el borrador intacto para reintentar.
func (s *Submitter) Submit(ctx context.Context) (*models.Appointment, error) {
	if !s.drafts.IsComplete() {
		return nil, ErrDraftIncomplete
	}
	d := s.drafts.Get()

	sub := api.QuoteSubmission{
		BranchID:           d.BranchID,
		ServiceID:          d.ServiceID,
		Date:               d.Date,
		Time:               d.Time,
		PlateType:          d.PlateType,
		PlateNumber:        d.PlateNumber,
		Brand:              d.Brand,
		Model:              d.Model,
		ProblemDescription: d.ProblemDescription,
	}
	if u := s.session.Current(); u != nil {
		sub.ClientName = u.Name
		sub.ClientEmail = u.Email
		sub.ClientPhone = u.Phone
	}

	ap, err := s.client.SubmitQuote(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.drafts.Clear()
	return ap, nil
}
