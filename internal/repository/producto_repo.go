package repository

import (
	"context"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks. Every query is scoped by the owning
// user: products never leak across accounts.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, usuarioID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	ListBajoStock(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, usuarioID, id uuid.UUID) error
	Reactivar(ctx context.Context, usuarioID, id uuid.UUID) error

	// FindPublicByID serves the unauthenticated price check: active products
	// only, no owner scoping.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)

	// FindByIDTx re-reads the product inside a transaction, for audit rows
	// that need the pre-decrement stock figure.
	FindByIDTx(tx *gorm.DB, usuarioID, id uuid.UUID) (*model.Producto, error)

	// DescontarStockTx performs the conditional atomic decrement:
	// UPDATE ... SET stock_actual = stock_actual - ? WHERE stock_actual >= ?.
	// Returns rows affected; 0 means insufficient stock and nothing changed.
	DescontarStockTx(tx *gorm.DB, usuarioID, id uuid.UUID, cantidad int) (int64, error)

	// AjustarStockTx applies a signed delta; negative deltas carry the same
	// non-negativity guard as a sale decrement.
	AjustarStockTx(tx *gorm.DB, usuarioID, id uuid.UUID, delta int) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindPublicByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Where("id = ? AND activo = true", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, usuarioID, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.Where("id = ? AND usuario_id = ?", id, usuarioID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, usuarioID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{}).Where("usuario_id = ?", usuarioID)

	// Activo filter: "false" = inactivos, "all" = todos, anything else = activos (default)
	switch filter.Activo {
	case "false":
		q = q.Where("activo = false")
	case "all":
		// no filter
	default:
		q = q.Where("activo = true")
	}

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) ListBajoStock(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND activo = true AND stock_actual <= stock_minimo", usuarioID).
		Order("stock_actual ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Update("activo", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, usuarioID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Update("activo", true).Error
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, usuarioID, id uuid.UUID, cantidad int) (int64, error) {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND usuario_id = ? AND stock_actual >= ?", id, usuarioID, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	return res.RowsAffected, res.Error
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, usuarioID, id uuid.UUID, delta int) (int64, error) {
	q := tx.Model(&model.Producto{}).Where("id = ? AND usuario_id = ?", id, usuarioID)
	if delta < 0 {
		q = q.Where("stock_actual >= ?", -delta)
	}
	res := q.Update("stock_actual", gorm.Expr("stock_actual + ?", delta))
	return res.RowsAffected, res.Error
}
