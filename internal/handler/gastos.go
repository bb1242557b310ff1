package handler

import (
	"net/http"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
)

type GastoHandler struct{ svc service.GastoService }

func NewGastoHandler(svc service.GastoService) *GastoHandler { return &GastoHandler{svc: svc} }

// Registrar godoc
// @Summary Registra un gasto y lo descuenta del arqueo abierto
// @Tags gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarGastoRequest true "Monto, metodo y descripcion"
// @Success 201 {object} dto.GastoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/gastos [post]
func (h *GastoHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.RegistrarGasto(c.Request.Context(), usuarioID, req)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista gastos con filtros de fecha y categoria
// @Tags gastos
// @Produce json
// @Security BearerAuth
// @Param fecha query string false "YYYY-MM-DD"
// @Param categoria query string false "Categoria de gasto"
// @Success 200 {object} dto.GastoListResponse
// @Router /v1/gastos [get]
func (h *GastoHandler) Listar(c *gin.Context) {
	var filter dto.GastoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros invalidos: "+err.Error()))
		return
	}
	usuarioID := usuarioIDFromClaims(c)

	resp, err := h.svc.ListarGastos(c.Request.Context(), usuarioID, filter)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
