//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	messagerepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/message"
	syllabusrepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/llm"
	authpkg "github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
	"github.com/heartmarshall/syllabus-backend/internal/service/assistant"
	authsvc "github.com/heartmarshall/syllabus-backend/internal/service/auth"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/transport/middleware"
	"github.com/heartmarshall/syllabus-backend/internal/transport/rest"
)

const (
	adminUsername = "registrar"
	adminPassword = "e2e-password"
	modelAnswer   = "The lecture is in Hall 1."
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	llmCalls   *atomic.Int32
	lastSystem *atomic.Value
	jwt        *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeModel serves the messages endpoint with a fixed answer and records
// the system prompt of the last request.
func fakeModel(t *testing.T, calls *atomic.Int32, lastSystem *atomic.Value) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			http.NotFound(w, r)
			return
		}
		calls.Add(1)

		var req struct {
			System []struct {
				Text string `json:"text"`
			} `json:"system"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.System) > 0 {
			lastSystem.Store(req.System[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "msg_e2e",
			"type":          "message",
			"role":          "assistant",
			"model":         "e2e-model",
			"content":       []map[string]string{{"type": "text", "text": modelAnswer}},
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"usage":         map[string]int{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake model endpoint.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	syllabi := syllabusrepo.New(pool)
	messages := messagerepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		JWTSecret:         "test-secret-at-least-32-chars-long!!",
		JWTIssuer:         "test-issuer",
		AccessTokenTTL:    15 * time.Minute,
		AdminUsername:     adminUsername,
		AdminPasswordHash: string(hash),
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	var (
		calls      atomic.Int32
		lastSystem atomic.Value
	)
	model := fakeModel(t, &calls, &lastSystem)
	llmCfg := config.LLMConfig{
		APIKey:          "e2e-key",
		Model:           "e2e-model",
		MaxTokens:       256,
		Timeout:         5 * time.Second,
		HistoryMessages: 10,
		ContextChars:    20000,
	}

	compiler := schedule.NewCompiler(logger, schedule.Config{Workers: 2, DetectionWindow: 25})
	authService := authsvc.NewService(logger, jwtMgr, authCfg)
	syllabusService := syllabus.NewService(logger, syllabi, compiler, txm, 2025)
	assistantService := assistant.NewService(logger, messages, syllabi, llm.NewWithURL(llmCfg, model.URL, logger), txm, llmCfg)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterConfig{
		Health:   rest.NewHealthHandler(pool, "test-version", true),
		Schedule: rest.NewScheduleHandler(compiler, 2025, 1<<20, logger),
		Syllabus: rest.NewSyllabusHandler(syllabusService, time.UTC, 1<<20, logger),
		Chat:     rest.NewChatHandler(assistantService, logger),
		Auth:     rest.NewAuthHandler(authService, logger),
		Tokens:   authService,
		Limiter:  limiter,
		RateLimit: config.RateLimitConfig{
			ChatPerMinute:  1000,
			LoginPerMinute: 1000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Request-Id",
			ExposedHeaders: "X-Request-Id,X-Blocks-Failed",
			MaxAge:         86400,
		},
		Logger: logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		llmCalls:   &calls,
		lastSystem: &lastSystem,
		jwt:        jwtMgr,
	}
}

// adminToken issues a valid admin token without going through login.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	tok, _, err := ts.jwt.GenerateAccessToken(adminUsername)
	require.NoError(t, err)
	return tok
}

// do sends a request and returns the status and raw body. A non-nil body
// is encoded as JSON unless it is already a string.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
		contentType = "text/plain; charset=utf-8"
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// doJSON is like do but decodes the response into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()
	status, data := ts.do(t, method, path, body, token)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
	}
	return status
}

// flatSchedule renders a one-lecture course in the flat dialect.
func flatSchedule(courseID, subject string) string {
	return "course: " + courseID + `
- day: יום שלישי
  - date: "18.3"
    - time: "8-10"
      subject: "` + subject + `"
      location: "Hall 1"
`
}
