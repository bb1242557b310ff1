package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/milagrosarganin/x3-padel-center-website/internal/apierror"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// errStatus maps service errors to HTTP status codes. Unknown errors fall
// through to 400 so internals are never leaked as 500s on business paths.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNoAutenticado):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrProductoNoEncontrado),
		errors.Is(err, service.ErrVentaNoEncontrada),
		errors.Is(err, service.ErrMesaNoEncontrada):
		return http.StatusNotFound
	case errors.Is(err, service.ErrArqueoYaAbierto), errors.Is(err, service.ErrSinArqueoAbierto):
		return http.StatusConflict
	case service.EsStockInsuficiente(err):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// abortErr writes the mapped status with the service error message.
func abortErr(c *gin.Context, err error) {
	c.JSON(errStatus(err), apierror.New(err.Error()))
}
