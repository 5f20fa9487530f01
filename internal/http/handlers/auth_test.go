package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doLogin(r http.Handler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBob = `{"username":"bob","email":"bob@example.com","first_name":"Bob","last_name":"Builder","password":"pw123456","role":"user"}`

func TestRegister(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodPost, "/auth/", registerBob, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201 (body: %s)", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("body = %q; want empty", w.Body.String())
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r, _ := newTestRouter()

	if w := doJSON(r, http.MethodPost, "/auth/", registerBob, ""); w.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d; want 201", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/auth/", registerBob, ""); w.Code != http.StatusConflict {
		t.Fatalf("second register: status = %d; want 409 (body: %s)", w.Code, w.Body.String())
	}
}

func TestRegister_MissingFields(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodPost, "/auth/", `{"email":"x@example.com"}`, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d; want 422", w.Code)
	}
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter()

	if w := doJSON(r, http.MethodPost, "/auth/", registerBob, ""); w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d; want 201", w.Code)
	}

	w := doLogin(r, "bob", "pw123456")
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d; want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("access_token is empty")
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("token_type = %q; want bearer", resp.TokenType)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	r, _ := newTestRouter()

	if w := doJSON(r, http.MethodPost, "/auth/", registerBob, ""); w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d; want 201", w.Code)
	}

	// Wrong password and unknown user come back identical.
	for _, creds := range [][2]string{{"bob", "wrong"}, {"nobody", "pw123456"}} {
		w := doLogin(r, creds[0], creds[1])
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("login %s: status = %d; want 401", creds[0], w.Code)
		}
		if !strings.Contains(w.Body.String(), "Could not validate user.") {
			t.Fatalf("login %s: body = %s; want uniform message", creds[0], w.Body.String())
		}
	}
}
