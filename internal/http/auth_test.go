package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"shoppulse/internal/auth"
	"shoppulse/internal/http/handlers"
	"shoppulse/internal/repos"
	"shoppulse/internal/services"
)

func newAuthApp(t *testing.T) (*fiber.App, *auth.Tokens) {
	t.Helper()
	db := openTestDB(t)
	tokens := auth.NewTokens("test-token-secret", time.Hour)
	h := &handlers.AuthHandler{Auth: &services.AuthService{
		Users:  repos.NewUserRepo(db),
		Tokens: tokens,
	}}

	app := fiber.New()
	app.Post("/api/register", h.Register)
	app.Post("/api/login", h.Login)
	app.Get("/api/secret", handlers.RequireAuth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals(handlers.LocalUserEmail)})
	})
	return app, tokens
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterAndDuplicate(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/register", `{"email":"admin@example.com","password":"correct horse"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest("POST", "/api/register", `{"email":"Admin@Example.com","password":"another pass"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email (case-insensitive): want 409, got %d", resp.StatusCode)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	app, _ := newAuthApp(t)

	cases := []string{
		`{"email":"not-an-email","password":"long enough pw"}`,
		`{"email":"admin@example.com","password":"short"}`,
		`not json`,
	}
	for _, body := range cases {
		resp, err := app.Test(jsonRequest("POST", "/api/register", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	app, tokens := newAuthApp(t)

	if _, err := app.Test(jsonRequest("POST", "/api/register", `{"email":"admin@example.com","password":"correct horse"}`)); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(jsonRequest("POST", "/api/login", `{"email":"admin@example.com","password":"correct horse"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("login response: %v", err)
	}
	if out.Message != "Login successful" || out.Token == "" {
		t.Fatalf("unexpected login response: %s", raw)
	}

	claims, err := tokens.Parse(out.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("claims email: got %q", claims.Email)
	}

	// And the token opens the protected route.
	req := httptest.NewRequest("GET", "/api/secret", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("protected route with valid token: want 200, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newAuthApp(t)

	if _, err := app.Test(jsonRequest("POST", "/api/register", `{"email":"admin@example.com","password":"correct horse"}`)); err != nil {
		t.Fatal(err)
	}

	for _, body := range []string{
		`{"email":"admin@example.com","password":"wrong horse"}`,
		`{"email":"nobody@example.com","password":"correct horse"}`,
		`{"email":"","password":""}`,
	} {
		resp, err := app.Test(jsonRequest("POST", "/api/login", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestRequireAuthStatusCodes(t *testing.T) {
	app, _ := newAuthApp(t)

	// No Authorization header.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/secret", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: want 401, got %d", resp.StatusCode)
	}

	// Garbage token.
	req := httptest.NewRequest("GET", "/api/secret", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("garbage token: want 403, got %d", resp.StatusCode)
	}

	// Token signed with a different secret.
	other := auth.NewTokens("other-secret", time.Hour)
	foreign, err := other.Issue("u1", "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/api/secret", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign token: want 403, got %d", resp.StatusCode)
	}

	// Expired token.
	short := auth.NewTokens("test-token-secret", time.Millisecond)
	expired, err := short.Issue("u1", "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	req = httptest.NewRequest("GET", "/api/secret", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expired token: want 403, got %d", resp.StatusCode)
	}
}
