package handler

import (
	"net/http"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProveedorHandler struct{ svc service.ProveedorService }

func NewProveedorHandler(svc service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{svc: svc}
}

// Crear godoc
// @Summary Crea un proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearProveedorRequest true "Datos del proveedor"
// @Success 201 {object} dto.ProveedorResponse
// @Router /v1/proveedores [post]
func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
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

// Listar godoc
// @Summary Lista proveedores activos
// @Tags proveedores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProveedorResponse
// @Router /v1/proveedores [get]
func (h *ProveedorHandler) Listar(c *gin.Context) {
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Listar(c.Request.Context(), usuarioID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza un proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de proveedor"
// @Param body body dto.ActualizarProveedorRequest true "Campos a modificar"
// @Success 200 {object} dto.ProveedorResponse
// @Router /v1/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarProveedorRequest
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

// Eliminar godoc
// @Summary Desactiva un proveedor (soft delete)
// @Tags proveedores
// @Security BearerAuth
// @Param id path string true "ID de proveedor"
// @Success 204
// @Router /v1/proveedores/{id} [delete]
func (h *ProveedorHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	if err := h.svc.Eliminar(c.Request.Context(), usuarioID, id); err != nil {
		abortErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
