package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirArqueoRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
	Comentarios  string          `json:"comentarios"   validate:"omitempty,max=500"`
}

type CerrarArqueoRequest struct {
	// SaldoDeclarado is the physically counted amount at close.
	SaldoDeclarado decimal.Decimal `json:"saldo_declarado" validate:"min=0"`
	Comentarios    string          `json:"comentarios"     validate:"omitempty,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MontosPorMetodo breaks a running total down by payment method.
type MontosPorMetodo struct {
	Efectivo        decimal.Decimal `json:"efectivo"`
	Tarjeta         decimal.Decimal `json:"tarjeta"`
	Transferencia   decimal.Decimal `json:"transferencia"`
	CuentaCorriente decimal.Decimal `json:"cuenta_corriente"`
	QR              decimal.Decimal `json:"qr"`
	Otro            decimal.Decimal `json:"otro"`
	Total           decimal.Decimal `json:"total"`
}

type ArqueoResponse struct {
	ID            string          `json:"id"`
	FechaApertura string          `json:"fecha_apertura"`
	FechaCierre   *string         `json:"fecha_cierre"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	Comentarios   string          `json:"comentarios"`
	Ventas        MontosPorMetodo `json:"ventas"`
	Gastos        MontosPorMetodo `json:"gastos"`

	// Present once the session is closed.
	SaldoEsperado  *decimal.Decimal `json:"saldo_esperado,omitempty"`
	SaldoDeclarado *decimal.Decimal `json:"saldo_declarado,omitempty"`
	Diferencia     *decimal.Decimal `json:"diferencia,omitempty"`
}

type ArqueoListResponse struct {
	Data  []ArqueoResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
