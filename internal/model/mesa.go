package model

import (
	"time"

	"github.com/google/uuid"
)

// Mesa is a gastro-bar table. Estado tracks whether the table is currently
// serving ("abierta") or free ("cerrada"); sales produced on a table carry
// its id in Venta.MesaID.
type Mesa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre    string    `gorm:"not null"`
	Estado    string    `gorm:"type:varchar(10);not null;default:'cerrada'"` // abierta | cerrada
	CreatedAt time.Time
	UpdatedAt time.Time
}
