package transform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/textmorph/auth/token"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/server/middleware"
	"github.com/kbukum/textmorph/store"
)

func newTransformApp(t *testing.T, completer Completer) (*gin.Engine, *store.Memory, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	user, err := mem.CreateUser(context.Background(), "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	codec, err := token.NewCodec(token.Config{Secret: "test-secret-test-secret-12345678", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	bearerToken, err := codec.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	log := logger.NewDefault("test")
	engine := gin.New()
	NewHandler(NewService(mem, completer, log)).RegisterRoutes(engine, middleware.Auth(codec, mem, log))

	return engine, mem, user.ID, bearerToken
}

func postTransform(engine *gin.Engine, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/transform", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestTransformEndpoint(t *testing.T) {
	fake := &fakeCompleter{reply: "shorter"}
	engine, mem, userID, bearer := newTransformApp(t, fake)

	if err := mem.SetLLMKey(context.Background(), userID, "sk-test"); err != nil {
		t.Fatalf("SetLLMKey: %v", err)
	}

	w := postTransform(engine, `{"selectedText":"a long passage","command":"make_shorter"}`, bearer)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"transformedText":"shorter"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestTransformEndpointRequiresAuth(t *testing.T) {
	engine, _, _, _ := newTransformApp(t, &fakeCompleter{reply: "x"})

	w := postTransform(engine, `{"selectedText":"text","command":"summarize"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestTransformEndpointWithoutKey(t *testing.T) {
	engine, _, _, bearer := newTransformApp(t, &fakeCompleter{reply: "x"})

	w := postTransform(engine, `{"selectedText":"text","command":"summarize"}`, bearer)
	if w.Code != http.StatusPreconditionFailed {
		t.Errorf("status = %d, want 412 (body: %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "FAILED_PRECONDITION") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestTransformEndpointValidation(t *testing.T) {
	engine, _, _, bearer := newTransformApp(t, &fakeCompleter{reply: "x"})

	cases := []struct {
		name string
		body string
	}{
		{"missing command", `{"selectedText":"text"}`},
		{"missing text", `{"command":"summarize"}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postTransform(engine, tc.body, bearer)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestTransformEndpointUnknownCommand(t *testing.T) {
	engine, mem, userID, bearer := newTransformApp(t, &fakeCompleter{reply: "x"})
	if err := mem.SetLLMKey(context.Background(), userID, "sk-test"); err != nil {
		t.Fatalf("SetLLMKey: %v", err)
	}

	w := postTransform(engine, `{"selectedText":"text","command":"do_magic"}`, bearer)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "INVALID_ARGUMENT") {
		t.Errorf("body = %s", w.Body.String())
	}
}
