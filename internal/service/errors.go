package service

import (
	"errors"
	"fmt"
)

// Sentinel errors grouped by how the caller should react. Validation errors
// are rejected before any write; conflict errors require the caller to
// re-read state; auth errors never touch an entity. Handlers map these to
// HTTP status codes — see handler.errStatus.

// Validation
var (
	ErrCarritoVacio     = errors.New("la venta no tiene items")
	ErrCantidadInvalida = errors.New("la cantidad debe ser mayor a cero")
	ErrMontoInvalido    = errors.New("el monto debe ser mayor a cero")
	ErrMetodoInvalido   = errors.New("metodo de pago invalido")
)

// Conflict
var (
	ErrArqueoYaAbierto  = errors.New("ya existe un arqueo de caja abierto")
	ErrSinArqueoAbierto = errors.New("no hay arqueo de caja abierto")
)

// Auth / not found
var (
	ErrNoAutenticado        = errors.New("no autenticado")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrMesaNoEncontrada     = errors.New("mesa no encontrada")
)

// StockInsuficienteError identifies the offending product so the UI can tell
// the cashier exactly which line to fix.
type StockInsuficienteError struct {
	Producto   string
	Solicitado int
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: solicitado %d, disponible %d",
		e.Producto, e.Solicitado, e.Disponible)
}

// EsStockInsuficiente reports whether err is a stock rejection.
func EsStockInsuficiente(err error) bool {
	var e *StockInsuficienteError
	return errors.As(err, &e)
}
