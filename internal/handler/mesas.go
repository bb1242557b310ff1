package handler

import (
	"net/http"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MesaHandler struct{ svc service.MesaService }

func NewMesaHandler(svc service.MesaService) *MesaHandler {
	return &MesaHandler{svc: svc}
}

// Crear godoc
// @Summary Crea una mesa del sector gastro
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearMesaRequest true "Datos de la mesa"
// @Success 201 {object} dto.MesaResponse
// @Router /v1/mesas [post]
func (h *MesaHandler) Crear(c *gin.Context) {
	var req dto.CrearMesaRequest
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
// @Summary Lista las mesas del usuario
// @Tags mesas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MesaResponse
// @Router /v1/mesas [get]
func (h *MesaHandler) Listar(c *gin.Context) {
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Listar(c.Request.Context(), usuarioID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Renombra una mesa o cambia su estado (abierta/cerrada)
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Param body body dto.ActualizarMesaRequest true "Campos a modificar"
// @Success 200 {object} dto.MesaResponse
// @Router /v1/mesas/{id} [put]
func (h *MesaHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarMesaRequest
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
// @Summary Elimina una mesa
// @Tags mesas
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Success 204
// @Router /v1/mesas/{id} [delete]
func (h *MesaHandler) Eliminar(c *gin.Context) {
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
