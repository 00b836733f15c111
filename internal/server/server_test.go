package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dream-recall/dream_recall/internal/config"
	"github.com/dream-recall/dream_recall/internal/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppName:        "DreamRecall",
		AppEnv:         "test",
		Port:           "0",
		ClientOrigin:   "http://localhost:3000",
		JWTSecret:      "fixture-secret",
		JWTExpiry:      time.Hour,
		LoginRateLimit: 100,
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	srv, err := New(testConfig(), nil, nil, logging.Discard())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	return srv.App()
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()

	var decoded map[string]any
	if len(payload) > 0 && payload[0] == '{' {
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("decode %s: %v", payload, err)
		}
	}
	return resp, decoded
}

const registerBody = `{"name":"A","email":"a@x.com","username":"alice01","password":"password1"}`

func TestRegisterLoginAndEmptyPostList(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d (%v)", resp.StatusCode, body)
	}
	for _, field := range []string{"id", "name", "email", "username"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("register response missing %q: %v", field, body)
		}
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("register response contains password field: %v", body)
	}

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"alice01","password":"password1"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200 got %d (%v)", resp.StatusCode, body)
	}
	token, _ := body["authToken"].(string)
	if token == "" {
		t.Fatalf("login response missing authToken: %v", body)
	}
	userObj, _ := body["user"].(map[string]any)
	if userObj["username"] != "alice01" {
		t.Fatalf("login response user mismatch: %v", body)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/post", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	listResp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	payload, err := io.ReadAll(listResp.Body)
	if err != nil {
		t.Fatalf("read list body: %v", err)
	}
	listResp.Body.Close()
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("list posts: expected 200 got %d", listResp.StatusCode)
	}
	if strings.TrimSpace(string(payload)) != "[]" {
		t.Fatalf("expected empty post list, got %s", payload)
	}
}

func TestPostLifecycle(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	_, login := doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"alice01","password":"password1"}`, "")
	token, _ := login["authToken"].(string)

	resp, created := doJSON(t, app, fiber.MethodPost, "/api/post", `{"title":"flying","content":"I could fly"}`, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create post: expected 201 got %d (%v)", resp.StatusCode, created)
	}
	postID, _ := created["id"].(string)
	if postID == "" {
		t.Fatalf("create post response missing id: %v", created)
	}
	author, _ := created["user"].(map[string]any)
	if author["username"] != "alice01" {
		t.Fatalf("post author mismatch: %v", created)
	}

	resp, got := doJSON(t, app, fiber.MethodGet, "/api/post/"+postID, "", token)
	if resp.StatusCode != http.StatusOK || got["title"] != "flying" {
		t.Fatalf("get post: status %d body %v", resp.StatusCode, got)
	}

	// The aggregate listing is public.
	req := httptest.NewRequest(fiber.MethodGet, "/api/post/all", nil)
	allResp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("get all posts: %v", err)
	}
	allResp.Body.Close()
	if allResp.StatusCode != http.StatusOK {
		t.Fatalf("get all posts: expected 200 got %d", allResp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/post/"+postID, `{"title":"still flying","content":"higher"}`, token)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("update post: expected 204 got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/post/"+postID, "", token)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete post: expected 204 got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/post/"+postID, "", token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted post: expected 404 got %d", resp.StatusCode)
	}
}

func TestRefreshReturnsFreshToken(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	_, login := doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"alice01","password":"password1"}`, "")
	token, _ := login["authToken"].(string)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/refresh", "", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: expected 200 got %d (%v)", resp.StatusCode, body)
	}
	refreshed, _ := body["authToken"].(string)
	if refreshed == "" {
		t.Fatalf("refresh response missing authToken: %v", body)
	}
	userObj, _ := body["user"].(map[string]any)
	if userObj["username"] != "alice01" {
		t.Fatalf("refresh user mismatch: %v", body)
	}
}

func TestLoginFailuresShareShape(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")

	wrongResp, wrongBody := doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"alice01","password":"wrongpassword"}`, "")
	missingResp, missingBody := doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"nobody","password":"password1"}`, "")

	if wrongResp.StatusCode != http.StatusUnauthorized || missingResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongResp.StatusCode, missingResp.StatusCode)
	}
	if wrongBody["message"] != missingBody["message"] {
		t.Fatalf("login failure messages differ: %v vs %v", wrongBody, missingBody)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400 got %d (%v)", resp.StatusCode, body)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "already exists") {
		t.Fatalf("unexpected duplicate message: %v", body)
	}
}

func TestProtectedRouteWithoutTokenNeverMutates(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/post", `{"title":"x","content":"y"}`, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/post/all", nil)
	allResp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("get all posts: %v", err)
	}
	payload, _ := io.ReadAll(allResp.Body)
	allResp.Body.Close()
	if strings.TrimSpace(string(payload)) != "[]" {
		t.Fatalf("unauthenticated request created a post: %s", payload)
	}
}

func TestUnmatchedRouteShape(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/nope", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	if body["error"] != "Not Found." {
		t.Fatalf("unexpected 404 body: %v", body)
	}
}

func TestUnauthenticatedUserReads(t *testing.T) {
	app := newTestApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/api/user", registerBody, "")
	id, _ := created["id"].(string)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/user", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list users: expected 200 got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/user/"+id, "", "")
	if resp.StatusCode != http.StatusOK || body["username"] != "alice01" {
		t.Fatalf("get user: status %d body %v", resp.StatusCode, body)
	}
}
