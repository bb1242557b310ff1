package handler

import (
	"net/http"
	"strconv"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/middleware"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArqueoHandler struct{ svc service.ArqueoService }

func NewArqueoHandler(svc service.ArqueoService) *ArqueoHandler { return &ArqueoHandler{svc: svc} }

// Abrir godoc
// @Summary Abre un nuevo arqueo de caja
// @Tags arqueo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirArqueoRequest true "Saldo inicial contado"
// @Success 201 {object} dto.ArqueoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/arqueo/abrir [post]
func (h *ArqueoHandler) Abrir(c *gin.Context) {
	var req dto.AbrirArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Abrir(c.Request.Context(), usuarioID, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cerrar godoc
// @Summary Cierra el arqueo abierto declarando el saldo contado
// @Tags arqueo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CerrarArqueoRequest true "Saldo declarado"
// @Success 200 {object} dto.ArqueoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/arqueo/cerrar [post]
func (h *ArqueoHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Cerrar(c.Request.Context(), usuarioID, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activo godoc
// @Summary Devuelve el arqueo abierto del usuario
// @Tags arqueo
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ArqueoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/arqueo/activo [get]
func (h *ArqueoHandler) Activo(c *gin.Context) {
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.Activo(c.Request.Context(), usuarioID)
	if err != nil {
		abortErr(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Sin arqueo abierto"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary Lista los arqueos cerrados, mas reciente primero
// @Tags arqueo
// @Produce json
// @Security BearerAuth
// @Param page query int false "Pagina"
// @Param limit query int false "Tamano de pagina"
// @Success 200 {object} dto.ArqueoListResponse
// @Router /v1/arqueo/historial [get]
func (h *ArqueoHandler) Historial(c *gin.Context) {
	usuarioID := usuarioIDFromClaims(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.svc.Historial(c.Request.Context(), usuarioID, page, limit)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func usuarioIDFromClaims(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	id, _ := uuid.Parse(claims.UserID)
	return id
}
