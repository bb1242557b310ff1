package service_test

import (
	"context"
	"testing"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil)
	usuarioID := uuid.New()

	resp, err := svc.Crear(context.Background(), usuarioID, dto.CrearProductoRequest{
		Nombre:      "Tubo de pelotas",
		Categoria:   "deportes",
		PrecioCosto: decimal.NewFromInt(3000),
		PrecioVenta: decimal.NewFromInt(4500),
		StockActual: 12,
		StockMinimo: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tubo de pelotas", resp.Nombre)
	assert.Equal(t, "4500", resp.PrecioVenta.String())
	assert.True(t, resp.Activo)
}

func TestActualizarProductoPrecioInvalido(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil)
	usuarioID := uuid.New()
	p := seedProducto(repo, usuarioID, "Gaseosa", 300, 10, 2)

	cero := decimal.Zero
	_, err := svc.Actualizar(context.Background(), usuarioID, p.ID, dto.ActualizarProductoRequest{
		PrecioVenta: &cero,
	})
	assert.ErrorIs(t, err, service.ErrMontoInvalido)
	assert.Equal(t, "300", p.PrecioVenta.String())
}

func TestActualizarProducto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil)
	usuarioID := uuid.New()
	p := seedProducto(repo, usuarioID, "Gaseosa", 300, 10, 2)

	nuevo := decimal.NewFromInt(350)
	minimo := 4
	resp, err := svc.Actualizar(context.Background(), usuarioID, p.ID, dto.ActualizarProductoRequest{
		PrecioVenta: &nuevo,
		StockMinimo: &minimo,
	})
	require.NoError(t, err)
	assert.Equal(t, "350", resp.PrecioVenta.String())
	assert.Equal(t, 4, resp.StockMinimo)
	assert.Equal(t, "Gaseosa", resp.Nombre)
}

func TestDesactivarYReactivarProducto(t *testing.T) {
	ctx := context.Background()
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil)
	usuarioID := uuid.New()
	p := seedProducto(repo, usuarioID, "Gaseosa", 300, 10, 2)

	require.NoError(t, svc.Desactivar(ctx, usuarioID, p.ID))
	assert.False(t, p.Activo)

	list, err := svc.Listar(ctx, usuarioID, dto.ProductoFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Data)

	require.NoError(t, svc.Reactivar(ctx, usuarioID, p.ID))
	assert.True(t, p.Activo)
}

func TestObtenerProductoAjeno(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo, nil)
	p := seedProducto(repo, uuid.New(), "Gaseosa", 300, 10, 2)

	_, err := svc.ObtenerPorID(context.Background(), uuid.New(), p.ID)
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}
