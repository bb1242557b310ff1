package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Arqueo is a cash-drawer reconciliation session. A NULL FechaCierre marks
// the open session; a partial unique index on (usuario_id) WHERE
// fecha_cierre IS NULL guarantees at most one open arqueo per user even
// under concurrent opens (see infra.applySchemaPatches).
//
// While open, the per-method ventas_*/gastos_* columns accumulate through
// atomic `SET col = col + ?` increments issued inside the same transaction
// as the originating venta/gasto, so the counters never drift from the
// ledgers. Once FechaCierre is stamped the row is immutable.
type Arqueo struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	FechaApertura time.Time  `gorm:"not null"`
	FechaCierre   *time.Time `gorm:"index"`

	SaldoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Comentarios  string          `gorm:"not null;default:''"`

	VentasEfectivo        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VentasTarjeta         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VentasTransferencia   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VentasCuentaCorriente decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VentasQR              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VentasOtro            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	GastosEfectivo        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosTarjeta         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosTransferencia   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosCuentaCorriente decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosQR              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosOtro            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// Set on close, fixed afterwards.
	SaldoEsperado  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	SaldoDeclarado *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Diferencia     *decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time
}

// Abierto reports whether the session is still accumulating.
func (a *Arqueo) Abierto() bool { return a.FechaCierre == nil }

// VentasPorMetodo returns the sales column for a method.
func (a *Arqueo) VentasPorMetodo(m MetodoPago) decimal.Decimal {
	switch m {
	case MetodoEfectivo:
		return a.VentasEfectivo
	case MetodoTarjeta:
		return a.VentasTarjeta
	case MetodoTransferencia:
		return a.VentasTransferencia
	case MetodoCuentaCorriente:
		return a.VentasCuentaCorriente
	case MetodoQR:
		return a.VentasQR
	default:
		return a.VentasOtro
	}
}

// GastosPorMetodo returns the expenses column for a method.
func (a *Arqueo) GastosPorMetodo(m MetodoPago) decimal.Decimal {
	switch m {
	case MetodoEfectivo:
		return a.GastosEfectivo
	case MetodoTarjeta:
		return a.GastosTarjeta
	case MetodoTransferencia:
		return a.GastosTransferencia
	case MetodoCuentaCorriente:
		return a.GastosCuentaCorriente
	case MetodoQR:
		return a.GastosQR
	default:
		return a.GastosOtro
	}
}

// TotalVentas sums sales across every payment method.
func (a *Arqueo) TotalVentas() decimal.Decimal {
	total := decimal.Zero
	for _, m := range MetodosPago {
		total = total.Add(a.VentasPorMetodo(m))
	}
	return total
}

// TotalGastos sums expenses across every payment method.
func (a *Arqueo) TotalGastos() decimal.Decimal {
	total := decimal.Zero
	for _, m := range MetodosPago {
		total = total.Add(a.GastosPorMetodo(m))
	}
	return total
}

// Esperado is the expected closing balance:
// saldo_inicial + Σ ventas − Σ gastos.
func (a *Arqueo) Esperado() decimal.Decimal {
	return a.SaldoInicial.Add(a.TotalVentas()).Sub(a.TotalGastos())
}
