package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gasto is an append-only expense record. Monto is always positive; the
// direction is implied by the entity itself.
type Gasto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha       time.Time       `gorm:"not null;index"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago  MetodoPago      `gorm:"type:varchar(20);not null"`
	Descripcion string          `gorm:"not null"`
	Categoria   string          `gorm:"not null;default:'general'"`
	CreatedAt   time.Time
}
