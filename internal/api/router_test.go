package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/geoyouth/league-api/internal/core/service"
)

// The metrics middleware registers its collectors with the default Prometheus
// registry, so the router is built once and the scenarios run as sequential
// subtests against it.
func TestRouter_EndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err, "error mocking DB")
	defer db.Close()

	tokens := service.NewTokenIssuer("test-secret", time.Hour)
	e := NewRouter(db, tokens, zerolog.Nop())

	adminToken, err := tokens.Issue(1, "admin")
	require.NoError(t, err)
	userToken, err := tokens.Issue(2, "user")
	require.NoError(t, err)

	do := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	t.Run("register returns a usable token", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users (email, password_hash, role, created_at) VALUES ($1, $2, $3, $4) RETURNING user_id").
			WithArgs("new@example.com", sqlmock.AnyArg(), "user", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

		rec := do(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"secret1"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		claims, err := tokens.Verify(decode(t, rec)["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("register rejects duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users (email, password_hash, role, created_at) VALUES ($1, $2, $3, $4) RETURNING user_id").
			WithArgs("new@example.com", sqlmock.AnyArg(), "user", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		rec := do(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"secret1"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email already exists", decode(t, rec)["error"])
	})

	t.Run("register rejects invalid payload before storage", func(t *testing.T) {
		// No query expectation: a validation failure must not reach the DB.
		rec := do(http.MethodPost, "/api/auth/register", `{"email":"not-an-email","password":"secret1"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("register rejects short password", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/auth/register", `{"email":"short@example.com","password":"pw1"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password must be at least 6", decode(t, rec)["error"])
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("login succeeds with correct password", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, email, password_hash, role, created_at FROM users WHERE email = $1").
			WithArgs("new@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash", "role", "created_at"}).
				AddRow(int64(7), "new@example.com", string(hash), "user", time.Now()))

		rec := do(http.MethodPost, "/api/auth/login", `{"email":"new@example.com","password":"secret1"}`, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		claims, err := tokens.Verify(decode(t, rec)["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
	})

	t.Run("login rejects wrong password", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, email, password_hash, role, created_at FROM users WHERE email = $1").
			WithArgs("new@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash", "role", "created_at"}).
				AddRow(int64(7), "new@example.com", string(hash), "user", time.Now()))

		rec := do(http.MethodPost, "/api/auth/login", `{"email":"new@example.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", decode(t, rec)["error"])
	})

	t.Run("create club requires a token", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/clubs", `{"name":"FC Test","city":"Springfield"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "no token provided", decode(t, rec)["error"])
	})

	t.Run("create club forbids non-admin users", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/clubs", `{"name":"FC Test","city":"Springfield"}`, userToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "admin access required", decode(t, rec)["error"])
	})

	t.Run("create club as admin", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO clubs (name, logo_url, city) VALUES ($1, $2, $3) RETURNING club_id, name, logo_url, city").
			WithArgs("FC Test", nil, "Springfield").
			WillReturnRows(sqlmock.NewRows([]string{"club_id", "name", "logo_url", "city"}).
				AddRow(int64(5), "FC Test", nil, "Springfield"))

		rec := do(http.MethodPost, "/api/clubs", `{"name":"FC Test","city":"Springfield"}`, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decode(t, rec)
		assert.Equal(t, float64(5), body["club_id"])
		assert.Equal(t, "FC Test", body["name"])
		assert.Nil(t, body["logo_url"])
	})

	t.Run("create club rejects missing required field before storage", func(t *testing.T) {
		// No query expectation: the invalid body must never produce a write.
		rec := do(http.MethodPost, "/api/clubs", `{"name":"FC Test"}`, adminToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get club is public", func(t *testing.T) {
		mock.ExpectQuery("SELECT club_id, name, logo_url, city FROM clubs WHERE club_id = $1").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"club_id", "name", "logo_url", "city"}).
				AddRow(int64(5), "FC Test", nil, "Springfield"))

		rec := do(http.MethodGet, "/api/clubs/5", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Springfield", decode(t, rec)["city"])
	})

	t.Run("get club unknown id", func(t *testing.T) {
		mock.ExpectQuery("SELECT club_id, name, logo_url, city FROM clubs WHERE club_id = $1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"club_id", "name", "logo_url", "city"}))

		rec := do(http.MethodGet, "/api/clubs/99", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Club not found", decode(t, rec)["error"])
	})

	t.Run("get club malformed id", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/clubs/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid id", decode(t, rec)["error"])
	})

	t.Run("delete club then repeat", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM clubs WHERE club_id = $1 RETURNING club_id").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"club_id"}).AddRow(int64(5)))

		rec := do(http.MethodDelete, "/api/clubs/5", "", adminToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Club deleted", decode(t, rec)["message"])

		mock.ExpectQuery("DELETE FROM clubs WHERE club_id = $1 RETURNING club_id").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"club_id"}))

		rec = do(http.MethodDelete, "/api/clubs/5", "", adminToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list matches with paging and status filter", func(t *testing.T) {
		kickoff := time.Date(2026, 4, 12, 15, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT match_id, team1_id, team2_id, tournament_id, match_date, score_team1, score_team2, status, venue FROM matches WHERE status = $1 ORDER BY match_date LIMIT $2 OFFSET $3").
			WithArgs("completed", 5, 5).
			WillReturnRows(sqlmock.NewRows([]string{"match_id", "team1_id", "team2_id", "tournament_id", "match_date", "score_team1", "score_team2", "status", "venue"}).
				AddRow(int64(21), int64(1), int64(2), int64(1), kickoff, int64(3), int64(1), "completed", nil))
		mock.ExpectQuery("SELECT COUNT(*) FROM matches WHERE status = $1").
			WithArgs("completed").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		rec := do(http.MethodGet, "/api/matches?status=completed&page=2&limit=5", "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decode(t, rec)
		matches := body["matches"].([]any)
		require.Len(t, matches, 1)
		assert.Equal(t, float64(21), matches[0].(map[string]any)["match_id"])

		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(2), pagination["page"])
		assert.Equal(t, float64(5), pagination["limit"])
		assert.Equal(t, float64(12), pagination["total"])
		assert.Equal(t, float64(3), pagination["totalPages"])
	})

	t.Run("list matches clamps bad paging values", func(t *testing.T) {
		mock.ExpectQuery("SELECT match_id, team1_id, team2_id, tournament_id, match_date, score_team1, score_team2, status, venue FROM matches ORDER BY match_date LIMIT $1 OFFSET $2").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"match_id", "team1_id", "team2_id", "tournament_id", "match_date", "score_team1", "score_team2", "status", "venue"}))
		mock.ExpectQuery("SELECT COUNT(*) FROM matches").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		rec := do(http.MethodGet, "/api/matches?page=-3&limit=0", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		pagination := decode(t, rec)["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(10), pagination["limit"])
	})

	t.Run("liveness probe", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet(), "expectations were not met")
}
