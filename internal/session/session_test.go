package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/TallerExpressCR/taller-app-core/internal/api"
	"github.com/TallerExpressCR/taller-app-core/internal/storage"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1"}
	if exp != nil {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func loginServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "maria@example.com" || body["password"] != "secreto1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": token,
				"user":  map[string]any{"id": "u1", "name": "María Solano", "email": "maria@example.com"},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/user/u1":
			var upd map[string]string
			_ = json.NewDecoder(r.Body).Decode(&upd)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"user":    map[string]any{"id": "u1", "name": upd["name"], "email": "maria@example.com"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLoginPersistsAndReloads(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signedToken(t, &exp)
	srv := loginServer(t, token)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "app.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := New(api.NewClient(srv.URL), store)
	if err := m.Login(context.Background(), "maria@example.com", "secreto1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !m.Valid() {
		t.Fatal("fresh session not valid")
	}
	if u := m.Current(); u == nil || u.Name != "María Solano" {
		t.Fatalf("Current = %+v", u)
	}

	// otro arranque de la app: el manager rehidrata desde disco
	store2, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	m2 := New(api.NewClient(srv.URL), store2)
	m2.Load()
	if m2.Token() != token {
		t.Fatal("token not rehydrated")
	}
	if u := m2.Current(); u == nil || u.ID != "u1" {
		t.Fatalf("rehydrated user = %+v", u)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := loginServer(t, "irrelevant")
	defer srv.Close()

	m := New(api.NewClient(srv.URL), nil)
	err := m.Login(context.Background(), "maria@example.com", "equivocada")
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if m.Valid() {
		t.Fatal("session valid after failed login")
	}
}

func TestValid(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"garbage", "no-es-un-jwt", false},
		{"expired", signedToken(t, &past), false},
		{"future exp", signedToken(t, &future), true},
		{"no exp claim", signedToken(t, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(api.NewClient("http://unused"), nil)
			if tt.token != "" {
				m.mu.Lock()
				m.token = tt.token
				m.mu.Unlock()
			}
			if got := m.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	srv := loginServer(t, signedToken(t, &exp))
	defer srv.Close()

	m := New(api.NewClient(srv.URL), nil)

	// sin sesión no hay petición
	name := "María S. Vargas"
	if _, err := m.UpdateProfile(context.Background(), api.UserUpdate{Name: &name}); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}

	if err := m.Login(context.Background(), "maria@example.com", "secreto1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	user, err := m.UpdateProfile(context.Background(), api.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != name {
		t.Fatalf("name = %q", user.Name)
	}
	if u := m.Current(); u == nil || u.Name != name {
		t.Fatalf("Current = %+v", u)
	}
}

func TestLogout(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	srv := loginServer(t, signedToken(t, &exp))
	defer srv.Close()

	store, err := storage.Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := New(api.NewClient(srv.URL), store)
	if err := m.Login(context.Background(), "maria@example.com", "secreto1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout()
	if m.Valid() || m.Current() != nil {
		t.Fatal("session survives logout")
	}

	// el almacenamiento también quedó limpio
	m2 := New(api.NewClient(srv.URL), store)
	m2.Load()
	if m2.Token() != "" {
		t.Fatal("persisted session survives logout")
	}
}
