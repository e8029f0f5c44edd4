// Package session administra la sesión autenticada del dispositivo: login
// contra el backend, persistencia local del token y el perfil, y chequeo de
// vigencia del token sin llamar a la red.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
	"github.com/TallerExpressCR/taller-app-core/internal/models"
	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

var ErrNoSession = errors.New("no active session")

type Manager struct {
	client *api.Client
	store  *storage.Store

	mu    sync.Mutex
	token string
	user  *models.User
}

func New(client *api.Client, store *storage.Store) *Manager {
	return &Manager{client: client, store: store}
}

// Load rehidrata la sesión persistida al abrir la app. Un fallo de lectura
// deja la sesión vacía (la app pide login de nuevo).
func (m *Manager) Load() {
	if m.store == nil {
		return
	}
	token, user, err := m.store.LoadSession()
	if err != nil {
		log.Printf("session: load failed: %v", err)
		return
	}
	if token == "" {
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
	m.client.SetToken(token)
}

// Login autentica y persiste la sesión. La escritura local que falle solo se
// registra: la sesión vive en memoria el resto de la corrida.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, user, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.SaveSession(token, user); err != nil {
			log.Printf("session: persist failed: %v", err)
		}
	}
	return nil
}

// Current devuelve el perfil de la sesión, o nil si no hay.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Valid revisa la vigencia del token leyendo el claim exp sin verificar la
// firma: el dispositivo no conoce el secreto y la palabra final siempre la
// tiene el backend con sus 401.
func (m *Manager) Valid() bool {
	token := m.Token()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		// token sin exp: se asume vigente hasta que el backend diga 401
		return true
	}
	return exp.After(time.Now())
}

// UpdateProfile edita el perfil vía el backend y actualiza la copia local.
// Sin id de usuario no hay petición: se degrada a error normal.
func (m *Manager) UpdateProfile(ctx context.Context, upd api.UserUpdate) (models.User, error) {
	cur := m.Current()
	if cur == nil || cur.ID == "" {
		return models.User{}, ErrNoSession
	}

	user, err := m.client.UpdateUser(ctx, cur.ID, upd)
	if err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	m.user = &user
	token := m.token
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.SaveSession(token, user); err != nil {
			log.Printf("session: persist failed: %v", err)
		}
	}
	return user, nil
}

// Logout limpia memoria y almacenamiento local.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	m.client.SetToken("")

	if m.store != nil {
		if err := m.store.ClearSession(); err != nil {
			log.Printf("session: clear failed: %v", err)
		}
	}
}
