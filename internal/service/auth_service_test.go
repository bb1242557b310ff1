package service_test

import (
	"context"
	"testing"

	"github.com/milagrosarganin/x3-padel-center-website/internal/config"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func TestCrearUsuarioYLogin(t *testing.T) {
	ctx := context.Background()
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	creado, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "caja1",
		Nombre:   "Caja Mostrador",
		Password: "super-secreta-1",
		Rol:      "cajero",
	})
	require.NoError(t, err)
	assert.Equal(t, "cajero", creado.Rol)
	assert.True(t, creado.Activo)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "caja1", Password: "super-secreta-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "caja1", resp.User.Username)

	// Hashes are never echoed back anywhere.
	assert.NotContains(t, resp.AccessToken, "super-secreta-1")
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	_, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "caja1",
		Nombre:   "Caja",
		Password: "super-secreta-1",
		Rol:      "cajero",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "caja1", Password: "otra"})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestLoginUsuarioDesactivado(t *testing.T) {
	ctx := context.Background()
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	creado, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "caja1",
		Nombre:   "Caja",
		Password: "super-secreta-1",
		Rol:      "cajero",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarUsuario(ctx, uuid.MustParse(creado.ID)))

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "caja1", Password: "super-secreta-1"})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	_, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "super1",
		Nombre:   "Supervisor",
		Password: "super-secreta-1",
		Rol:      "supervisor",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "super1", Password: "super-secreta-1"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "super1", renovado.User.Username)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.ErrorContains(t, err, "refresh token invalido")
}

func TestActualizarUsuario(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	creado, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "caja1",
		Nombre:   "Caja",
		Password: "super-secreta-1",
		Rol:      "cajero",
	})
	require.NoError(t, err)

	id := uuid.MustParse(creado.ID)
	actualizado, err := svc.ActualizarUsuario(ctx, id, dto.ActualizarUsuarioRequest{
		Nombre:   "Caja Principal",
		Rol:      "supervisor",
		Password: "nueva-clave-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Caja Principal", actualizado.Nombre)
	assert.Equal(t, "supervisor", actualizado.Rol)

	// The new password takes effect immediately.
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "caja1", Password: "nueva-clave-123"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "caja1", Password: "super-secreta-1"})
	assert.Error(t, err)
}

func TestListarUsuarios(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())

	u1, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{Username: "a", Nombre: "A", Password: "12345678x", Rol: "cajero"})
	require.NoError(t, err)
	_, err = svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{Username: "b", Nombre: "B", Password: "12345678x", Rol: "administrador"})
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarUsuario(ctx, uuid.MustParse(u1.ID)))

	activos, err := svc.ListarUsuarios(ctx, false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarUsuarios(ctx, true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
