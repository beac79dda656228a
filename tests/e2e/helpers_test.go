//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/osanchez/ideahub-backend/internal/adapter/postgres"
	followrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/follow"
	idearepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/idea"
	notificationrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/notification"
	"github.com/osanchez/ideahub-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/token"
	userrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/user"
	authpkg "github.com/osanchez/ideahub-backend/internal/auth"
	"github.com/osanchez/ideahub-backend/internal/config"
	authsvc "github.com/osanchez/ideahub-backend/internal/service/auth"
	followsvc "github.com/osanchez/ideahub-backend/internal/service/follow"
	ideasvc "github.com/osanchez/ideahub-backend/internal/service/idea"
	notificationsvc "github.com/osanchez/ideahub-backend/internal/service/notification"
	usersvc "github.com/osanchez/ideahub-backend/internal/service/user"
	"github.com/osanchez/ideahub-backend/internal/transport/middleware"
	"github.com/osanchez/ideahub-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	follows := followrepo.New(pool)
	ideas := idearepo.New(pool)
	notifications := notificationrepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        jwtIssuer,
		AccessTokenTTL:   accessTTL,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	})
	userService := usersvc.NewService(logger, users)
	followService := followsvc.NewService(logger, follows, users)
	notificationService := notificationsvc.NewService(logger, notifications, follows)
	ideaService := ideasvc.NewService(logger, ideas, follows, users, notificationService, txm,
		config.IdeasConfig{MaxTextLength: 200})

	router := rest.NewRouter(rest.Handlers{
		Auth:         rest.NewAuthHandler(authService, logger),
		User:         rest.NewUserHandler(userService, logger),
		Idea:         rest.NewIdeaHandler(ideaService, logger),
		Follow:       rest.NewFollowHandler(followService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Health:       rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request and returns status + decoded body. A nil body
// sends no payload; an empty token sends no Authorization header.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// uniqueName derives a unique username so tests can share one database.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// registerUser registers a fresh user through the API and returns the
// access token and user id.
func (ts *testServer) registerUser(t *testing.T, username string) (token, userID string) {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    fmt.Sprintf("%s@example.com", username),
		"username": username,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register %s: %v", username, body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user in response")
	userID, ok = user["id"].(string)
	require.True(t, ok, "expected user id in response")

	return token, userID
}

// followAndApprove creates a follow request from follower to target and
// approves it as the target.
func (ts *testServer) followAndApprove(t *testing.T, followerToken, targetToken, targetID string) {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/users/"+targetID+"/follow", nil, followerToken)
	require.Equal(t, http.StatusCreated, status, "follow request: %v", body)
	edgeID, ok := body["id"].(string)
	require.True(t, ok, "expected edge id in response")

	status, body = ts.doJSON(t, http.MethodPost, "/api/v1/follow-requests/"+edgeID,
		map[string]string{"status": "APPROVED"}, targetToken)
	require.Equal(t, http.StatusOK, status, "approve request: %v", body)
}
