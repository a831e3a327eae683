package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/chat"
	"github.com/amanullahykhan/voice-chatbot-project/internal/config"
	"github.com/amanullahykhan/voice-chatbot-project/internal/database"
	"github.com/amanullahykhan/voice-chatbot-project/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode},
		Session: config.SessionConfig{TokenTTLDays: 7},
	}

	// no provider configured: deterministic fallback replies
	generator := chat.NewGenerator(nil, time.Second, zerolog.Nop(),
		chat.WithPick(func(n int) int { return 0 }))

	return Setup(cfg, db, generator, zerolog.Nop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
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

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func register(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("register returned no token")
	}
	return token
}

func TestRegisterValidation(t *testing.T) {
	r := setupServer(t)

	cases := []gin.H{
		{"username": "al", "email": "a@x.com", "password": "secret1"},
		{"username": "alice", "email": "a@x.com", "password": "12345"},
		{"username": "alice", "email": "not-an-email", "password": "secret1"},
	}
	for _, body := range cases {
		w, resp := doJSON(t, r, http.MethodPost, "/register", "", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("register %v status = %d, want 400", body, w.Code)
		}
		if resp["status"] != "error" {
			t.Errorf("register %v status field = %v", body, resp["status"])
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := setupServer(t)
	register(t, r, "alice", "a@x.com", "secret1")

	w, _ := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username": "alice", "email": "other@x.com", "password": "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}
}

func TestLoginAndLogout(t *testing.T) {
	r := setupServer(t)
	register(t, r, "alice", "a@x.com", "secret1")

	// wrong password
	w, _ := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", w.Code)
	}

	// correct password
	w, resp := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "alice", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	if resp["email"] != "a@x.com" {
		t.Errorf("login email = %v", resp["email"])
	}

	// token works
	w, _ = doJSON(t, r, http.MethodGet, "/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("profile status = %d", w.Code)
	}

	// logout revokes it
	w, _ = doJSON(t, r, http.MethodPost, "/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/profile", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token profile status = %d, want 401", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/chat"},
		{http.MethodGet, "/history"},
		{http.MethodGet, "/conversations"},
		{http.MethodGet, "/preferences"},
		{http.MethodGet, "/profile"},
	} {
		w, _ := doJSON(t, r, route.method, route.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token status = %d, want 401", route.method, route.path, w.Code)
		}
	}
}

func TestCookieAuth(t *testing.T) {
	r := setupServer(t)
	token := register(t, r, "alice", "a@x.com", "secret1")

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("cookie auth status = %d", w.Code)
	}
}

func TestChatEndToEnd(t *testing.T) {
	r := setupServer(t)
	token := register(t, r, "alice", "a@x.com", "secret1")

	w, resp := doJSON(t, r, http.MethodPost, "/chat", token, gin.H{
		"message":         "hello",
		"conversation_id": "conv1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d, body %s", w.Code, w.Body.String())
	}
	if resp["voice_style"] != "natural" {
		t.Errorf("style = %v, want natural default", resp["voice_style"])
	}
	if resp["is_ai_generated"] != false {
		t.Error("fallback reply marked AI-generated")
	}
	if resp["conversation_id"] != "conv1" {
		t.Errorf("conversation id = %v", resp["conversation_id"])
	}
	text, _ := resp["text"].(string)
	if text == "" {
		t.Fatal("empty reply text")
	}
	settings, ok := resp["voice_settings"].(map[string]interface{})
	if !ok {
		t.Fatal("voice_settings missing")
	}
	if settings["user_rate"] != 1.0 {
		t.Errorf("user_rate = %v", settings["user_rate"])
	}

	// both turns land in history, user turn first
	w, resp = doJSON(t, r, http.MethodGet, "/history?conversation_id=conv1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	msgs, ok := resp["messages"].([]interface{})
	if !ok || len(msgs) != 2 {
		t.Fatalf("history messages = %v", resp["messages"])
	}
	first := msgs[0].(map[string]interface{})
	second := msgs[1].(map[string]interface{})
	if first["role"] != models.RoleUser || first["content"] != "hello" {
		t.Errorf("first turn = %v", first)
	}
	if second["role"] != models.RoleAssistant || second["content"] != text {
		t.Errorf("second turn = %v", second)
	}

	// conversation listing picks it up
	w, resp = doJSON(t, r, http.MethodGet, "/conversations", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("conversations status = %d", w.Code)
	}
	convs, ok := resp["conversations"].([]interface{})
	if !ok || len(convs) != 1 {
		t.Fatalf("conversations = %v", resp["conversations"])
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r := setupServer(t)
	token := register(t, r, "alice", "a@x.com", "secret1")

	w, _ := doJSON(t, r, http.MethodPost, "/chat", token, gin.H{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty chat status = %d, want 400", w.Code)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	r := setupServer(t)
	token := register(t, r, "alice", "a@x.com", "secret1")

	w, resp := doJSON(t, r, http.MethodGet, "/preferences", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get preferences status = %d", w.Code)
	}
	prefs := resp["preferences"].(map[string]interface{})
	if prefs["voice_style"] != "natural" {
		t.Errorf("default voice_style = %v", prefs["voice_style"])
	}

	// partial update with one bogus field
	w, _ = doJSON(t, r, http.MethodPut, "/preferences", token, gin.H{
		"speech_rate": 1.5,
		"bogus_field": "x",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("put preferences status = %d", w.Code)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/preferences", token, nil)
	prefs = resp["preferences"].(map[string]interface{})
	if prefs["speech_rate"] != 1.5 {
		t.Errorf("speech_rate = %v, want 1.5", prefs["speech_rate"])
	}

	// bogus-only update is a reported failure
	w, _ = doJSON(t, r, http.MethodPut, "/preferences", token, gin.H{"bogus_field": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus-only put status = %d, want 400", w.Code)
	}
}

func TestPublicEndpoints(t *testing.T) {
	r := setupServer(t)

	w, resp := doJSON(t, r, http.MethodGet, "/voices", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("voices status = %d", w.Code)
	}
	voices := resp["voices"].(map[string]interface{})
	if len(voices) != 5 {
		t.Errorf("voices = %d entries, want 5", len(voices))
	}

	w, resp = doJSON(t, r, http.MethodGet, "/status", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status status = %d", w.Code)
	}
	if resp["ai"] != "disconnected" {
		t.Errorf("ai state = %v, want disconnected", resp["ai"])
	}
	features := resp["features"].(map[string]interface{})
	if features["ai_responses"] != false {
		t.Errorf("ai_responses = %v", features["ai_responses"])
	}
}

func TestExportCSV(t *testing.T) {
	r := setupServer(t)
	token := register(t, r, "alice", "a@x.com", "secret1")

	doJSON(t, r, http.MethodPost, "/chat", token, gin.H{
		"message": "hello", "conversation_id": "conv1",
	})

	req := httptest.NewRequest(http.MethodGet, "/export/history.csv?conversation_id=conv1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("hello")) {
		t.Error("exported CSV missing the user turn")
	}
}
