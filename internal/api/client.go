// Package api es el cliente REST del backend de citas. Es la única frontera
// donde se tocan los alias legados del backend (snake_case/camelCase, las dos
// formas del checklist); hacia adentro solo circulan los tipos canónicos de
// internal/models.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/models"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 25 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        20,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// SetToken fija el token Bearer de la sesión activa.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do ejecuta una petición JSON y devuelve el cuerpo crudo de la respuesta.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.currentToken(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: read body", method, path)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("%s %s: status=%d body=%s", method, path, resp.StatusCode, string(raw))
	}

	return raw, nil
}

// --------- auth / perfil ---------

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

// Login autentica contra POST /login y deja el token puesto en el cliente.
func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	raw, err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", models.User{}, err
	}

	var out loginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", models.User{}, errors.Wrap(err, "decode login response")
	}
	if out.Token == "" {
		return "", models.User{}, errors.New("login response without token")
	}

	c.SetToken(out.Token)
	return out.Token, normalizeUser(out.User), nil
}

// UserUpdate son los campos editables del perfil.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type userResponse struct {
	Success bool     `json:"success"`
	User    wireUser `json:"user"`
}

// UpdateUser actualiza el perfil vía PUT /user/:id.
func (c *Client) UpdateUser(ctx context.Context, id string, upd UserUpdate) (models.User, error) {
	if id == "" {
		return models.User{}, errors.New("update user: missing user id")
	}

	raw, err := c.do(ctx, http.MethodPut, "/user/"+id, upd)
	if err != nil {
		return models.User{}, err
	}

	var out userResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.User{}, errors.Wrap(err, "decode user response")
	}
	if !out.Success {
		return models.User{}, errors.New("update user: backend reported failure")
	}
	return normalizeUser(out.User), nil
}
