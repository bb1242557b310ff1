package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Origen tags where a sale was produced inside the club.
// "mostrador" | "turnos" | "torneos" | "gastro"
type Origen string

const (
	OrigenMostrador Origen = "mostrador"
	OrigenTurnos    Origen = "turnos"
	OrigenTorneos   Origen = "torneos"
	OrigenGastro    Origen = "gastro"
)

// Venta is an append-only ledger entry. Total always equals the sum of its
// items (cantidad × precio_unitario) and is computed server-side from the
// catalog price at the instant of sale. Ventas are never mutated after
// creation; cancellation flips Estado and compensates stock/arqueo.
// Estado: "completada" | "anulada"
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago MetodoPago      `gorm:"type:varchar(20);not null"`
	Origen     *Origen         `gorm:"type:varchar(20)"`
	// MesaID references the gastro table/session the sale belongs to, if any.
	MesaID    *uuid.UUID `gorm:"type:uuid"`
	Estado    string     `gorm:"type:varchar(20);not null;default:'completada'"`
	CreatedAt time.Time  `gorm:"index"`

	Items []VentaItem `gorm:"foreignKey:VentaID"`
}

// VentaItem freezes the unit price at the moment of sale (price-at-sale):
// later catalog price changes never alter historical rows.
type VentaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}
