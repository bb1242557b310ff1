//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/milagrosarganin/x3-padel-center-website/internal/config"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/infra"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"
	"github.com/milagrosarganin/x3-padel-center-website/internal/router"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"
	"github.com/milagrosarganin/x3-padel-center-website/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Setup ────────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("x3padel_test"),
		tcPostgres.WithUsername("x3padel"),
		tcPostgres.WithPassword("x3padel"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin through the service so the bcrypt hash is real.
	authSvc := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	_, err = authSvc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "admin@e2e.test",
		Nombre:   "Admin E2E",
		Password: "x3padel2026",
		Rol:      "administrador",
	})
	require.NoError(t, err)

	r := router.New(cfg, db, rdb, worker.NewDispatcher(rdb))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin@e2e.test", "password": "x3padel2026"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

func (env *testEnv) crearProducto(t *testing.T, nombre string, precio float64, stock int) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":       nombre,
			"precio_costo": precio / 2,
			"precio_venta": precio,
			"stock_actual": stock,
			"stock_minimo": 1,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &prod)
	return prod.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Full drawer cycle over HTTP: open 5000, sell 300 cash + 1000 card, spend
// 150 cash, close counting 5160 → expected 6150, short by 990.
func TestE2E_CicloCompletoArqueo(t *testing.T) {
	env := setupTestEnv(t)

	gaseosaID := env.crearProducto(t, "Gaseosa", 300, 10)
	paletaID := env.crearProducto(t, "Paleta", 500, 10)

	resp := do(t, env.server, "POST", "/v1/arqueo/abrir",
		jsonBody(t, map[string]any{"saldo_inicial": 5000}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"metodo_pago": "efectivo",
			"items":       []map[string]any{{"producto_id": gaseosaID, "cantidad": 1}},
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"metodo_pago": "tarjeta",
			"items":       []map[string]any{{"producto_id": paletaID, "cantidad": 2}},
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/gastos",
		jsonBody(t, map[string]any{
			"monto":       150,
			"metodo_pago": "efectivo",
			"descripcion": "hielo para la barra",
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/arqueo/cerrar",
		jsonBody(t, map[string]any{"saldo_declarado": 5160}), env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cierre struct {
		SaldoEsperado  string `json:"saldo_esperado"`
		SaldoDeclarado string `json:"saldo_declarado"`
		Diferencia     string `json:"diferencia"`
	}
	decodeJSON(t, resp, &cierre)
	assert.Equal(t, "6150", cierre.SaldoEsperado)
	assert.Equal(t, "5160", cierre.SaldoDeclarado)
	assert.Equal(t, "-990", cierre.Diferencia)

	// No more open session.
	resp = do(t, env.server, "GET", "/v1/arqueo/activo", nil, env.token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_ArqueoDobleAperturaRechazada(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/v1/arqueo/abrir",
		jsonBody(t, map[string]any{"saldo_inicial": 1000}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/v1/arqueo/abrir",
		jsonBody(t, map[string]any{"saldo_inicial": 2000}), env.token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_VentaStockInsuficiente(t *testing.T) {
	env := setupTestEnv(t)
	prodID := env.crearProducto(t, "Agua", 250, 2)

	resp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"metodo_pago": "efectivo",
			"items":       []map[string]any{{"producto_id": prodID, "cantidad": 5}},
		}), env.token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Stock untouched by the rejected sale.
	resp = do(t, env.server, "GET", "/v1/productos/"+prodID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod struct {
		StockActual int `json:"stock_actual"`
	}
	decodeJSON(t, resp, &prod)
	assert.Equal(t, 2, prod.StockActual)
}

func TestE2E_AnularVentaRestauraStock(t *testing.T) {
	env := setupTestEnv(t)
	prodID := env.crearProducto(t, "Leche", 200, 10)

	resp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"metodo_pago": "efectivo",
			"items":       []map[string]any{{"producto_id": prodID, "cantidad": 3}},
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var venta struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &venta)

	resp = do(t, env.server, "POST", fmt.Sprintf("/v1/ventas/%s/anular", venta.ID),
		jsonBody(t, map[string]any{"motivo": "cobro duplicado"}), env.token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/v1/productos/"+prodID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod struct {
		StockActual int `json:"stock_actual"`
	}
	decodeJSON(t, resp, &prod)
	assert.Equal(t, 10, prod.StockActual)

	// The annulled sale drops out of the default listing.
	resp = do(t, env.server, "GET", "/v1/ventas", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, resp, &list)
	assert.EqualValues(t, 0, list.Total)
}

// The public price endpoint needs no token and is served from the Redis
// cache on the second hit.
func TestE2E_ConsultaPreciosPublica(t *testing.T) {
	env := setupTestEnv(t)
	prodID := env.crearProducto(t, "Tubo de pelotas", 4500, 8)

	for i := 0; i < 2; i++ {
		resp := do(t, env.server, "GET", "/v1/precio/"+prodID, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var precio struct {
			Nombre      string `json:"nombre"`
			PrecioVenta string `json:"precio_venta"`
		}
		decodeJSON(t, resp, &precio)
		assert.Equal(t, "Tubo de pelotas", precio.Nombre)
		assert.Equal(t, "4500", precio.PrecioVenta)
	}

	resp := do(t, env.server, "GET", "/v1/precio/no-es-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
