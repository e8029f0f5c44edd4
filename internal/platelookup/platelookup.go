// Package platelookup consulta el registro de placas para autollenar marca y
// modelo en el asistente de reserva. La API externa responde JSON envuelto en
// un nodo XML (<vehicleJson>{...}</vehicleJson>) con entidades escapadas, un
// formato heredado que hay que desenvolver antes de parsear.
package platelookup

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

// ErrNotFound indica que la placa no está en el registro. La pantalla lo
// degrada a campos vacíos editables, nunca a un fallo duro.
var ErrNotFound = errors.New("plate not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type vehicleEnvelope struct {
	XMLName xml.Name `xml:"vehicleJson"`
	Inner   string   `xml:",chardata"`
}

type vehiclePayload struct {
	Marca  string `json:"marca"`
	Brand  string `json:"brand"`
	Modelo string `json:"modelo"`
	Model  string `json:"model"`
}

// Lookup resuelve una placa a {marca, modelo}. Cualquier payload ilegible se
// reporta como error normal; el caller decide el estado "no disponible".
func (c *Client) Lookup(ctx context.Context, plate string) (models.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return models.Vehicle{}, ErrNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/placas/"+url.PathEscape(plate), nil)
	if err != nil {
		return models.Vehicle{}, errors.Wrap(err, "build plate request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Vehicle{}, errors.Wrap(err, "plate lookup")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Vehicle{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Vehicle{}, errors.Errorf("plate lookup: status=%d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Vehicle{}, errors.Wrap(err, "plate lookup: read body")
	}

	return parseVehicle(raw)
}

func parseVehicle(raw []byte) (models.Vehicle, error) {
	var env vehicleEnvelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return models.Vehicle{}, errors.Wrap(err, "unwrap vehicle xml")
	}

	inner := strings.TrimSpace(env.Inner)
	if inner == "" {
		return models.Vehicle{}, ErrNotFound
	}

	var p vehiclePayload
	if err := json.Unmarshal([]byte(inner), &p); err != nil {
		// algunas respuestas vienen doblemente escapadas
		unescaped := html.UnescapeString(inner)
		if err2 := json.Unmarshal([]byte(unescaped), &p); err2 != nil {
			return models.Vehicle{}, errors.Wrap(err, "parse vehicle json")
		}
	}

	v := models.Vehicle{
		Brand: firstNonEmpty(p.Marca, p.Brand),
		Model: firstNonEmpty(p.Modelo, p.Model),
	}
	if v.Brand == "" && v.Model == "" {
		return models.Vehicle{}, ErrNotFound
	}
	return v, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
