package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/scoutconnect-dev/scoutconnect/db"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/router"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "scoutconnect.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	tokens, err := auth.NewTokenManager("test-signing-secret", time.Minute)

	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	return router.New(router.Deps{
		Store:          store.New(conn),
		Tokens:         tokens,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response %q: %v", recorder.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, engine *gin.Engine, username, role string) string {
	t.Helper()

	resp := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": username,
		"email":    username + "@scoutconnect.test",
		"password": "password123",
		"role":     role,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, resp.Code, resp.Body.String())
	}

	resp = doRequest(t, engine, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": username,
		"password": "password123",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, resp.Code, resp.Body.String())
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	decodeBody(t, resp, &token)

	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", token)
	}

	return token.AccessToken
}

func TestScoutingFlow(t *testing.T) {
	engine := newTestServer(t)

	coachToken := registerAndLogin(t, engine, "coach_john", "coach")

	// Create a player.
	resp := doRequest(t, engine, http.MethodPost, "/api/players", coachToken, map[string]interface{}{
		"first_name": "Alex",
		"last_name":  "Morgan",
		"sport":      "soccer",
		"position":   "Forward",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("create player: status %d, body %s", resp.Code, resp.Body.String())
	}

	var player struct {
		ID uint `json:"id"`
	}

	decodeBody(t, resp, &player)

	// Evaluate the player.
	resp = doRequest(t, engine, http.MethodPost, "/api/evaluations", coachToken, map[string]interface{}{
		"player_id": player.ID,
		"sport":     "soccer",
		"criteria":  map[string]float64{"finishing": 92, "pace": 90.5},
		"score":     91.25,
		"notes":     "ready for the first team",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("create evaluation: status %d, body %s", resp.Code, resp.Body.String())
	}

	var evaluation struct {
		ID          uint               `json:"id"`
		EvaluatorID *uint              `json:"evaluator_id"`
		Criteria    map[string]float64 `json:"criteria"`
		Score       float64            `json:"score"`
	}

	decodeBody(t, resp, &evaluation)

	if evaluation.Score != 91.25 {
		t.Errorf("score = %v, want 91.25", evaluation.Score)
	}

	if evaluation.EvaluatorID == nil {
		t.Error("evaluator_id missing on new evaluation")
	}

	if evaluation.Criteria["finishing"] != 92 {
		t.Errorf("criteria round-trip lost data: %v", evaluation.Criteria)
	}

	// Delete the player; its evaluations must go with it.
	resp = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/players/%d", player.ID), coachToken, nil)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete player: status %d, body %s", resp.Code, resp.Body.String())
	}

	resp = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/evaluations?player_id=%d", player.ID), coachToken, nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("list evaluations: status %d, body %s", resp.Code, resp.Body.String())
	}

	var evaluations []json.RawMessage

	decodeBody(t, resp, &evaluations)

	if len(evaluations) != 0 {
		t.Errorf("%d evaluations survived player deletion", len(evaluations))
	}
}

func TestAuthenticationRequired(t *testing.T) {
	engine := newTestServer(t)

	resp := doRequest(t, engine, http.MethodGet, "/api/players", "", nil)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodGet, "/api/players", "not-a-real-token", nil)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodGet, "/api/health", "", nil)

	if resp.Code != http.StatusOK {
		t.Errorf("health must not require auth: status %d", resp.Code)
	}
}

func TestRoleGate(t *testing.T) {
	engine := newTestServer(t)

	userToken := registerAndLogin(t, engine, "plain_user", "")

	// A default-role user may read players but not create them.
	resp := doRequest(t, engine, http.MethodGet, "/api/players", userToken, nil)

	if resp.Code != http.StatusOK {
		t.Errorf("user list players: status %d, want 200", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodPost, "/api/players", userToken, map[string]interface{}{
		"first_name": "Tom",
		"last_name":  "Brady",
		"sport":      "football",
	})

	if resp.Code != http.StatusForbidden {
		t.Errorf("user create player: status %d, want 403", resp.Code)
	}

	// Account management is admin-only.
	resp = doRequest(t, engine, http.MethodDelete, "/api/accounts/1", userToken, nil)

	if resp.Code != http.StatusForbidden {
		t.Errorf("user delete account: status %d, want 403", resp.Code)
	}
}

func TestRegisterConflict(t *testing.T) {
	engine := newTestServer(t)

	registerAndLogin(t, engine, "scout_mary", "scout")

	resp := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "scout_mary",
		"email":    "mary2@scoutconnect.test",
		"password": "password123",
	})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("duplicate username: status %d, want 400", resp.Code)
	}
}

func TestRegisterEmailCaseSensitive(t *testing.T) {
	engine := newTestServer(t)

	resp := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "coach_john",
		"email":    "John@scoutconnect.test",
		"password": "password123",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("first register: status %d, body %s", resp.Code, resp.Body.String())
	}

	// Uniqueness is case-sensitive: a casing variant is a different email.
	resp = doRequest(t, engine, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "coach_jane",
		"email":    "john@scoutconnect.test",
		"password": "password123",
	})

	if resp.Code != http.StatusCreated {
		t.Errorf("case-variant email: status %d, want 201; body %s", resp.Code, resp.Body.String())
	}
}

func TestLoginBadCredentials(t *testing.T) {
	engine := newTestServer(t)

	registerAndLogin(t, engine, "scout_mary", "scout")

	resp := doRequest(t, engine, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": "scout_mary",
		"password": "wrongpassword",
	})

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", resp.Code)
	}
}

func TestMe(t *testing.T) {
	engine := newTestServer(t)

	token := registerAndLogin(t, engine, "coach_john", "coach")

	resp := doRequest(t, engine, http.MethodGet, "/api/auth/me", token, nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("me: status %d, body %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Account struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"account"`
	}

	decodeBody(t, resp, &body)

	if body.Account.Username != "coach_john" || body.Account.Role != "coach" {
		t.Errorf("unexpected profile: %+v", body.Account)
	}
}

func TestWatchlistOwnership(t *testing.T) {
	engine := newTestServer(t)

	coachToken := registerAndLogin(t, engine, "coach_john", "coach")
	scoutToken := registerAndLogin(t, engine, "scout_mary", "scout")

	resp := doRequest(t, engine, http.MethodPost, "/api/players", coachToken, map[string]interface{}{
		"first_name": "Serena",
		"last_name":  "Williams",
		"sport":      "tennis",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("create player: status %d, body %s", resp.Code, resp.Body.String())
	}

	var player struct {
		ID uint `json:"id"`
	}

	decodeBody(t, resp, &player)

	resp = doRequest(t, engine, http.MethodPost, "/api/watchlist", scoutToken, map[string]interface{}{
		"player_id": player.ID,
		"notes":     "one to watch",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("create watchlist entry: status %d, body %s", resp.Code, resp.Body.String())
	}

	var entry struct {
		ID uint `json:"id"`
	}

	decodeBody(t, resp, &entry)

	// The owner sees the entry; another non-admin account does not.
	resp = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/watchlist/%d", entry.ID), scoutToken, nil)

	if resp.Code != http.StatusOK {
		t.Errorf("owner get entry: status %d, want 200", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/watchlist/%d", entry.ID), coachToken, nil)

	if resp.Code != http.StatusForbidden {
		t.Errorf("non-owner get entry: status %d, want 403", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/watchlist/%d", entry.ID), coachToken, nil)

	if resp.Code != http.StatusForbidden {
		t.Errorf("non-owner delete entry: status %d, want 403", resp.Code)
	}

	resp = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/watchlist/%d", entry.ID), scoutToken, nil)

	if resp.Code != http.StatusNoContent {
		t.Errorf("owner delete entry: status %d, want 204", resp.Code)
	}
}
