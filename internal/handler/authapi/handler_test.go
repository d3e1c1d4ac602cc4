package authapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/auth"
	"github.com/capycare/capycare/backend/internal/handler/authapi"
	"github.com/capycare/capycare/backend/internal/store"
)

func newServer() (*httptest.Server, *auth.TokenManager) {
	accounts := auth.NewService(store.NewMemoryStore())
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	r := chi.NewRouter()
	authapi.New(accounts, tokens).RegisterRoutes(r)
	return httptest.NewServer(r), tokens
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST err: %v", err)
	}
	return resp
}

func TestSignUpIssuesToken(t *testing.T) {
	srv, tokens := newServer()
	defer srv.Close()

	resp := post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "secret1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var payload struct {
		Token string    `json:"token"`
		User  auth.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if payload.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", payload.User)
	}

	back, err := tokens.Verify(payload.Token)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if back.ID != payload.User.ID {
		t.Fatal("token subject should match the user")
	}
}

func TestSignUpDuplicateIs409(t *testing.T) {
	srv, _ := newServer()
	defer srv.Close()

	post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "secret1"}`).Body.Close()
	resp := post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "secret1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestSignUpWeakPasswordIs400(t *testing.T) {
	srv, _ := newServer()
	defer srv.Close()

	resp := post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "no"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestSignInWrongPasswordIs401(t *testing.T) {
	srv, _ := newServer()
	defer srv.Close()

	post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "secret1"}`).Body.Close()
	resp := post(t, srv.URL+"/auth/signin", `{"email": "alice@example.com", "password": "wrong"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestSignInReturnsToken(t *testing.T) {
	srv, _ := newServer()
	defer srv.Close()

	post(t, srv.URL+"/auth/signup", `{"email": "alice@example.com", "password": "secret1"}`).Body.Close()
	resp := post(t, srv.URL+"/auth/signin", `{"email": "alice@example.com", "password": "secret1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("sign-in should return a token")
	}
}
