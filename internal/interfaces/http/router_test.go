package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

type testServer struct {
	app   *fiber.App
	users *memUsers
}

func newTestServer(t *testing.T, limiter *apphttp.RateLimiter) *testServer {
	t.Helper()
	users := newMemUsers()
	app := apphttp.NewApp(logger.Nop(), apphttp.ServerConfig{Name: "test", Production: true, RequestTimeout: 5 * time.Second})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret: testJWTSecret, TTL: 24 * time.Hour, Issuer: testIssuer,
		}),
		UserUC:          usecase.NewUserUseCase(users),
		RestaurantUC:    usecase.NewRestaurantUseCase(noRestaurants{}, noTables{}, noMenu{}),
		AuthRateLimiter: limiter,
		JWTSecret:       testJWTSecret,
		Version:         "9.9.9",
	})
	return &testServer{app: app, users: users}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestRegistroYLogin_FlujoCompleto(t *testing.T) {
	s := newTestServer(t, nil)
	reg := map[string]string{"fullName": "Ana Souza", "email": "ana@resto.com", "phone": "11999990000", "password": "segredo123"}

	resp, body := s.do(t, http.MethodPost, "/api/auth/register", reg, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ana@resto.com", data["email"])
	assert.NotContains(t, data, "passwordHash")
	userID := int64(data["id"].(float64))

	// Registro duplicado: conflicto 400 sin alterar el usuario existente
	resp, body = s.do(t, http.MethodPost, "/api/auth/register", reg, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "EMAIL_EXISTS", body["code"])

	require.NoError(t, s.users.AssignRole(context.Background(), userID, entity.RoleGerente))

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@resto.com", "password": "segredo123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "Ana Souza", data["fullName"])
	assert.Equal(t, []interface{}{"GERENTE"}, data["roles"])
	token := data["token"].(string)
	require.NotEmpty(t, token)

	// El token habilita las rutas de gerente: la validación del path responde 400, no 401/403
	resp, body = s.do(t, http.MethodGet, "/api/manager/abc/staff", nil, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismaRespuesta(t *testing.T) {
	s := newTestServer(t, nil)
	resp, _ := s.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"fullName": "Bruno", "email": "bruno@resto.com", "password": "segredo123"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respWrong, bodyWrong := s.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "bruno@resto.com", "password": "otra"}, "")
	respUnknown, bodyUnknown := s.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nadie@resto.com", "password": "otra"}, "")

	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, bodyWrong, bodyUnknown)
}

func TestRegistro_CuerpoInvalido_400(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRestaurant_Inexistente_404(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/restaurants/999", nil, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["status"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotContains(t, body, "stack", "en producción no se expone el stack")
}

func TestGetRestaurant_IDNoNumerico_400(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/restaurants/abc", nil, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestListRestaurants_SinDatos_ListaVacia(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/restaurants", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []interface{}{}, body["data"])
}

func TestGetUser_Inexistente_404(t *testing.T) {
	s := newTestServer(t, nil)
	resp, _ := s.do(t, http.MethodGet, "/api/users/5", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestManager_SinToken_401(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/manager/1/analytics", nil, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestManager_RolGarcom_403(t *testing.T) {
	s := newTestServer(t, nil)
	resp, _ := s.do(t, http.MethodPatch, "/api/manager/1/settings", map[string]string{"tradeName": "x"}, tokenFor(t, time.Hour, "GARCOM"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStatus_DevuelveVersion(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/status", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "9.9.9", body["version"])
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestID_SeRespetaElRecibido(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRutaInexistente_404ConEnvelope(t *testing.T) {
	s := newTestServer(t, nil)
	resp, body := s.do(t, http.MethodGet, "/api/no-existe", nil, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestRateLimiter_Login_429(t *testing.T) {
	s := newTestServer(t, apphttp.NewRateLimiter(1, 1))
	creds := map[string]string{"email": "x@resto.com", "password": "p"}

	first, _ := s.do(t, http.MethodPost, "/api/auth/login", creds, "")
	assert.Equal(t, http.StatusUnauthorized, first.StatusCode)

	second, body := s.do(t, http.MethodPost, "/api/auth/login", creds, "")
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.Equal(t, "TOO_MANY_REQUESTS", body["code"])
	assert.Equal(t, "60", second.Header.Get("Retry-After"))
}

func TestErrorHandler_Panic_500(t *testing.T) {
	for _, production := range []bool{false, true} {
		app := apphttp.NewApp(logger.Nop(), apphttp.ServerConfig{Production: production})
		app.Get("/boom", func(c *fiber.Ctx) error { panic("explotó") })

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL", body["code"])
		assert.Equal(t, "error interno del servidor", body["message"], "el detalle no se envía al cliente")
		if production {
			assert.NotContains(t, body, "stack")
		} else {
			assert.NotEmpty(t, body["stack"])
		}
	}
}

func TestErrorHandler_FueraDeProduccion_StackSoloEn5xx(t *testing.T) {
	app := apphttp.NewApp(logger.Nop(), apphttp.ServerConfig{Production: false})
	app.Get("/invalido", func(c *fiber.Ctx) error {
		return fmt.Errorf("%w: capacity debe ser un entero positivo", domain.ErrInvalidInput)
	})
	app.Get("/caido", func(c *fiber.Ctx) error { return errors.New("conexión rechazada") })

	decode := func(path string) (int, map[string]interface{}) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body
	}

	status, body := decode("/invalido")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.NotContains(t, body, "stack")

	status, body = decode("/caido")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error interno del servidor", body["message"])
	assert.Equal(t, "conexión rechazada", body["stack"])
}

func TestErrorHandler_RegistraRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	app := apphttp.NewApp(log, apphttp.ServerConfig{Production: true})
	app.Get("/caido", func(c *fiber.Ctx) error { return errors.New("conexión rechazada") })

	req := httptest.NewRequest(http.MethodGet, "/caido", nil)
	req.Header.Set(apphttp.HeaderRequestID, "rid-500")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var logged []map[string]interface{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var m map[string]interface{}
		require.NoError(t, dec.Decode(&m))
		logged = append(logged, m)
	}
	require.Len(t, logged, 2, "error no controlado + línea de acceso")
	for _, m := range logged {
		assert.Equal(t, "rid-500", m["request_id"])
		assert.Equal(t, "error", m["level"])
	}
	assert.Equal(t, "conexión rechazada", logged[0]["error"])
}
