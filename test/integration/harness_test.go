package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"valorant-coach-service/internal/database"
	"valorant-coach-service/internal/http/handler"
	"valorant-coach-service/internal/http/router"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
	"valorant-coach-service/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
}

type testServer struct {
	t     *testing.T
	srv   *httptest.Server
	redis *miniredis.Miniredis
}

func newCoachTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	blacklist := service.NewRedisTokenBlacklist(client, "blacklist")

	users := repository.NewUserRepository(db)
	matches := repository.NewMatchRepository(db)
	sessions := repository.NewPracticeSessionRepository(db)
	strategies := repository.NewStrategyRepository(db)

	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	jwtMgr := security.NewJWTManager(
		"valorant-coach-service",
		"integration-access-secret-0123456",
		"integration-refresh-secret-01234",
	)

	authSvc := service.NewAuthService(users, hasher, jwtMgr, blacklist, time.Minute, time.Hour)
	matchSvc := service.NewMatchService(matches)
	sessionSvc := service.NewPracticeSessionService(sessions)
	strategySvc := service.NewStrategyService(strategies)
	dashboardSvc := service.NewDashboardService(matchSvc, sessionSvc, strategySvc)

	h := router.NewRouter(router.Dependencies{
		AuthHandler:            handler.NewAuthHandler(authSvc),
		MatchHandler:           handler.NewMatchHandler(matchSvc),
		PracticeSessionHandler: handler.NewPracticeSessionHandler(sessionSvc),
		StrategyHandler:        handler.NewStrategyHandler(strategySvc),
		DashboardHandler:       handler.NewDashboardHandler(dashboardSvc),
		JWTManager:             jwtMgr,
		Users:                  users,
		Blacklist:              blacklist,
		AuthRateLimitRPM:       1000,
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &testServer{t: t, srv: srv, redis: mr}
}

// doJSON issues a request against the test server and decodes the response
// envelope. An empty token leaves the Authorization header unset.
func (ts *testServer) doJSON(method, path, token string, body any) (int, envelope) {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			ts.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	if err != nil {
		ts.t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		ts.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		ts.t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func (ts *testServer) register(username, email, password string) (int, envelope) {
	ts.t.Helper()
	return ts.doJSON(http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (ts *testServer) login(username, password string) tokenPair {
	ts.t.Helper()
	status, env := ts.doJSON(http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if status != http.StatusOK {
		ts.t.Fatalf("login %s: expected 200, got %d (%+v)", username, status, env.Error)
	}
	var pair tokenPair
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		ts.t.Fatalf("login %s: decode token pair: %v", username, err)
	}
	return pair
}

// signup registers and logs in a user in one step.
func (ts *testServer) signup(username string) tokenPair {
	ts.t.Helper()
	status, env := ts.register(username, username+"@example.com", "hunter2hunter2")
	if status != http.StatusCreated {
		ts.t.Fatalf("register %s: expected 201, got %d (%+v)", username, status, env.Error)
	}
	return ts.login(username, "hunter2hunter2")
}
