package dto

import "github.com/shopspring/decimal"

type RegistrarGastoRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	MetodoPago  string          `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta transferencia cuenta_corriente qr otro"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
	Categoria   string          `json:"categoria"   validate:"omitempty,max=50"`
}

type GastoFilter struct {
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = all
	Categoria string `form:"categoria"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	Fecha       string          `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	MetodoPago  string          `json:"metodo_pago"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	CreatedAt   string          `json:"created_at"`
}

type GastoListResponse struct {
	Data  []GastoResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
