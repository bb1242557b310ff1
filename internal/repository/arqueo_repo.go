package repository

import (
	"context"
	"errors"
	"time"

	"github.com/milagrosarganin/x3-padel-center-website/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ArqueoRepository interface {
	Create(ctx context.Context, a *model.Arqueo) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Arqueo, error)
	// FindAbierto returns the user's open session, or nil when none exists.
	FindAbierto(ctx context.Context, usuarioID uuid.UUID) (*model.Arqueo, error)

	// SumarVentaTx / SumarGastoTx add monto to the open session's per-method
	// column with an atomic `SET col = col + ?`. They return the number of
	// rows touched: 0 means no session was open, which callers treat as a
	// silent no-op — a sale or expense never fails just because the drawer
	// is closed.
	SumarVentaTx(tx *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error)
	SumarGastoTx(tx *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error)

	// SumarVentaArqueoTx targets one specific session instead of "whichever
	// is open". Annulments use it so a compensation can only land on the
	// session that recorded the original sale, and only while it is open.
	SumarVentaArqueoTx(tx *gorm.DB, arqueoID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error)

	// CerrarTx stamps the closing fields. The WHERE fecha_cierre IS NULL
	// guard makes close-once atomic: of two concurrent closes exactly one
	// sees a row, the other gets 0 rows affected. saldo_esperado and
	// diferencia are computed inside the UPDATE from the row's own columns,
	// so a contribution landing after the caller's read still counts.
	CerrarTx(tx *gorm.DB, id uuid.UUID, declarado decimal.Decimal, cierre time.Time) (int64, error)

	ListCerrados(ctx context.Context, usuarioID uuid.UUID, page, limit int) ([]model.Arqueo, int64, error)
	DB() *gorm.DB
}

type arqueoRepo struct{ db *gorm.DB }

func NewArqueoRepository(db *gorm.DB) ArqueoRepository { return &arqueoRepo{db: db} }

func (r *arqueoRepo) DB() *gorm.DB { return r.db }

func (r *arqueoRepo) Create(ctx context.Context, a *model.Arqueo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *arqueoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Arqueo, error) {
	var a model.Arqueo
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *arqueoRepo) FindAbierto(ctx context.Context, usuarioID uuid.UUID) (*model.Arqueo, error) {
	var a model.Arqueo
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND fecha_cierre IS NULL", usuarioID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ventasCol / gastosCol map the enum to its column. The switch is exhaustive
// over model.MetodosPago; unknown values fall back to "otro" like the model
// accessors do.
func ventasCol(m model.MetodoPago) string {
	switch m {
	case model.MetodoEfectivo:
		return "ventas_efectivo"
	case model.MetodoTarjeta:
		return "ventas_tarjeta"
	case model.MetodoTransferencia:
		return "ventas_transferencia"
	case model.MetodoCuentaCorriente:
		return "ventas_cuenta_corriente"
	case model.MetodoQR:
		return "ventas_qr"
	default:
		return "ventas_otro"
	}
}

func gastosCol(m model.MetodoPago) string {
	switch m {
	case model.MetodoEfectivo:
		return "gastos_efectivo"
	case model.MetodoTarjeta:
		return "gastos_tarjeta"
	case model.MetodoTransferencia:
		return "gastos_transferencia"
	case model.MetodoCuentaCorriente:
		return "gastos_cuenta_corriente"
	case model.MetodoQR:
		return "gastos_qr"
	default:
		return "gastos_otro"
	}
}

func (r *arqueoRepo) SumarVentaTx(tx *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	col := ventasCol(metodo)
	res := tx.Model(&model.Arqueo{}).
		Where("usuario_id = ? AND fecha_cierre IS NULL", usuarioID).
		Update(col, gorm.Expr(col+" + ?", monto))
	return res.RowsAffected, res.Error
}

func (r *arqueoRepo) SumarGastoTx(tx *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	col := gastosCol(metodo)
	res := tx.Model(&model.Arqueo{}).
		Where("usuario_id = ? AND fecha_cierre IS NULL", usuarioID).
		Update(col, gorm.Expr(col+" + ?", monto))
	return res.RowsAffected, res.Error
}

func (r *arqueoRepo) SumarVentaArqueoTx(tx *gorm.DB, arqueoID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	col := ventasCol(metodo)
	res := tx.Model(&model.Arqueo{}).
		Where("id = ? AND fecha_cierre IS NULL", arqueoID).
		Update(col, gorm.Expr(col+" + ?", monto))
	return res.RowsAffected, res.Error
}

// esperadoExpr is the expected closing balance in SQL:
// saldo_inicial + Σ ventas − Σ gastos, over the row being closed.
const esperadoExpr = "saldo_inicial" +
	" + ventas_efectivo + ventas_tarjeta + ventas_transferencia + ventas_cuenta_corriente + ventas_qr + ventas_otro" +
	" - gastos_efectivo - gastos_tarjeta - gastos_transferencia - gastos_cuenta_corriente - gastos_qr - gastos_otro"

func (r *arqueoRepo) CerrarTx(tx *gorm.DB, id uuid.UUID, declarado decimal.Decimal, cierre time.Time) (int64, error) {
	res := tx.Model(&model.Arqueo{}).
		Where("id = ? AND fecha_cierre IS NULL", id).
		Updates(map[string]interface{}{
			"fecha_cierre":    cierre,
			"saldo_declarado": declarado,
			"saldo_esperado":  gorm.Expr(esperadoExpr),
			"diferencia":      gorm.Expr("? - ("+esperadoExpr+")", declarado),
		})
	return res.RowsAffected, res.Error
}

func (r *arqueoRepo) ListCerrados(ctx context.Context, usuarioID uuid.UUID, page, limit int) ([]model.Arqueo, int64, error) {
	var arqueos []model.Arqueo
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Arqueo{}).
		Where("usuario_id = ? AND fecha_cierre IS NOT NULL", usuarioID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("fecha_apertura DESC").Limit(limit).Offset(offset).Find(&arqueos).Error
	return arqueos, total, err
}
