package handler

import (
	"net/http"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductoHandler struct {
	svc        service.ProductoService
	inventario service.InventarioService
}

func NewProductoHandler(svc service.ProductoService, inventario service.InventarioService) *ProductoHandler {
	return &ProductoHandler{svc: svc, inventario: inventario}
}

// Crear godoc
// @Summary Crea un producto del catalogo
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearProductoRequest true "Datos del producto"
// @Success 201 {object} dto.ProductoResponse
// @Router /v1/productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary Devuelve un producto por ID
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Success 200 {object} dto.ProductoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/productos/{id} [get]
func (h *ProductoHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.ObtenerPorID(c.Request.Context(), usuarioID, id)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Lista productos con filtros
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProductoListResponse
// @Router /v1/productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros invalidos: "+err.Error()))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Listar(c.Request.Context(), usuarioID, filter)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza datos y precios de un producto
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Param body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success 200 {object} dto.ProductoResponse
// @Router /v1/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Actualizar(c.Request.Context(), usuarioID, id, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary Desactiva un producto (soft delete)
// @Tags productos
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Success 204
// @Router /v1/productos/{id} [delete]
func (h *ProductoHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	if err := h.svc.Desactivar(c.Request.Context(), usuarioID, id); err != nil {
		abortErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivar godoc
// @Summary Reactiva un producto desactivado
// @Tags productos
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Success 204
// @Router /v1/productos/{id}/reactivar [post]
func (h *ProductoHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	if err := h.svc.Reactivar(c.Request.Context(), usuarioID, id); err != nil {
		abortErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AjustarStock godoc
// @Summary Aplica un ajuste manual de stock con motivo auditable
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Param body body dto.AjustarStockRequest true "Delta firmado y motivo"
// @Success 200 {object} dto.ProductoResponse
// @Failure 409 {object} apierror.APIError "El ajuste dejaria stock negativo"
// @Router /v1/productos/{id}/stock [post]
func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	p, err := h.inventario.AjustarStock(c.Request.Context(), usuarioID, id, req.Delta, req.Motivo)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           p.ID.String(),
		"nombre":       p.Nombre,
		"stock_actual": p.StockActual,
	})
}

// Alertas godoc
// @Summary Productos en o por debajo de su stock minimo
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AlertaStockResponse
// @Router /v1/productos/alertas [get]
func (h *ProductoHandler) Alertas(c *gin.Context) {
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.inventario.ObtenerAlertas(c.Request.Context(), usuarioID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimientos godoc
// @Summary Historial de movimientos de stock de un producto
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Success 200 {array} dto.MovimientoStockResponse
// @Router /v1/productos/{id}/movimientos [get]
func (h *ProductoHandler) Movimientos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.inventario.ListarMovimientos(c.Request.Context(), usuarioID, id)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
