package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/appleboy/gofight/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitamin-tracker/internal/adapters/auth/jwtverifier"
	"vitamin-tracker/internal/adapters/storage/memory"
	"vitamin-tracker/internal/domain/intake"
	"vitamin-tracker/internal/domain/vitamins"
	"vitamin-tracker/internal/router"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	ErrorID string `json:"errorId"`
}

func decodeError(t *testing.T, r gofight.HTTPResponse) errorBody {
	t.Helper()

	var out errorBody
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &out), r.Body.String())
	return out
}

func user(id string) gofight.H {
	return gofight.H{"X-User-ID": id}
}

func TestVitamins_ValidationErrors(t *testing.T) {
	engine := router.NewRouter(router.Options{})
	r := gofight.New()

	r.POST("/api/vitamins").
		SetHeader(user("u1")).
		SetBody(`{"name":`).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "MALFORMED_PAYLOAD", decodeError(t, res).Code)
		})

	r.POST("/api/vitamins").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"name": 5, "dosage": "1"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "MALFORMED_PAYLOAD", decodeError(t, res).Code)
		})

	r.POST("/api/vitamins").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"name": "Vitamin C"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
			body := decodeError(t, res)
			assert.Equal(t, "INVALID_REQUEST", body.Code)
			assert.Contains(t, body.Message, "dosage")
		})

	r.PATCH("/api/vitamins/abc").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"name": "x"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})

	r.PATCH("/api/vitamins/42").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"name": "x"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusNotFound, res.Code)
			body := decodeError(t, res)
			assert.Equal(t, "NOT_FOUND", body.Code)
			assert.Equal(t, "vitamin not found", body.Message)
		})

	r.DELETE("/api/vitamins/abc").
		SetHeader(user("u1")).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusNoContent, res.Code)
		})
}

func TestIntake_ValidationErrors(t *testing.T) {
	engine := router.NewRouter(router.Options{})
	r := gofight.New()

	for _, path := range []string{
		"/api/vitamin-intake",
		"/api/vitamin-intake?date=not-a-date",
		"/api/vitamin-intake/summary",
	} {
		r.GET(path).
			SetHeader(user("u1")).
			Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
				assert.Equal(t, http.StatusBadRequest, res.Code, path)
				assert.Equal(t, "INVALID_REQUEST", decodeError(t, res).Code, path)
			})
	}

	r.POST("/api/vitamin-intake").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"vitaminId": "one", "date": "2024-01-01"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "MALFORMED_PAYLOAD", decodeError(t, res).Code)
		})

	r.POST("/api/vitamin-intake").
		SetHeader(user("u1")).
		SetJSON(gofight.D{"vitaminId": 1, "date": "2024-01-01", "taken": true}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "INVALID_REQUEST", decodeError(t, res).Code)
		})
}

func TestIntake_ListAcceptsDateTime(t *testing.T) {
	store := memory.New()
	v, err := store.CreateVitamin(context.Background(), vitamins.InsertVitamin{Name: "A", Dosage: "1", UserID: "u1"})
	require.NoError(t, err)
	_, err = store.UpsertVitaminIntake(context.Background(), intake.InsertVitaminIntake{
		VitaminID: v.ID, UserID: "u1", Date: "2024-01-01", Taken: true,
	})
	require.NoError(t, err)

	engine := router.NewRouter(router.Options{Storage: store})

	gofight.New().GET("/api/vitamin-intake?date=2024-01-01T22:15:00Z").
		SetHeader(user("u1")).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, res.Code)
			assert.JSONEq(t, `[{"id":1,"vitaminId":1,"userId":"u1","date":"2024-01-01","taken":true}]`, res.Body.String())
		})
}

// brokenStore falla en todo, para ver el camino 500.
type brokenStore struct{ *memory.Store }

var errBroken = errors.New("disk on fire")

func (brokenStore) GetVitamins(context.Context, string) ([]vitamins.Vitamin, error) {
	return nil, errBroken
}

func TestInternalErrors_HideCauseAndCarryErrorID(t *testing.T) {
	engine := router.NewRouter(router.Options{Storage: brokenStore{memory.New()}})

	gofight.New().GET("/api/vitamins").
		SetHeader(user("u1")).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusInternalServerError, res.Code)
			body := decodeError(t, res)
			assert.Equal(t, "INTERNAL", body.Code)
			assert.NotEmpty(t, body.ErrorID)
			assert.NotContains(t, res.Body.String(), "disk on fire")
		})
}

func TestBearerToken_WhenVerifierConfigured(t *testing.T) {
	const secret = "test-secret"
	engine := router.NewRouter(router.Options{AuthVerifier: jwtverifier.New(secret)})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jwt-user",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	r := gofight.New()

	r.POST("/api/vitamins").
		SetHeader(gofight.H{"Authorization": "Bearer " + token}).
		SetJSON(gofight.D{"name": "Magnesium", "dosage": "200mg"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, res.Code)
			assert.Contains(t, res.Body.String(), `"userId":"jwt-user"`)
		})

	r.GET("/api/vitamins").
		SetHeader(gofight.H{"Authorization": "Bearer not-a-token"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusUnauthorized, res.Code)
		})
}

func TestRequestIDIsEchoed(t *testing.T) {
	engine := router.NewRouter(router.Options{})

	gofight.New().GET("/health").
		SetHeader(gofight.H{"X-Request-Id": "req-123"}).
		Run(engine, func(res gofight.HTTPResponse, _ gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, res.Code)
			assert.Equal(t, "req-123", res.HeaderMap.Get("X-Request-Id"))
		})
}
