package service

import (
	"context"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioService is the stock ledger. Every mutation goes through a
// conditional atomic UPDATE (never read-then-write) and leaves an immutable
// MovimientoStock audit row, so quantity-on-hand can never be driven below
// zero by concurrent sales.
type InventarioService interface {
	// DescontarStockTx decrements stock inside the caller's transaction.
	// A failed guard (insufficient stock) returns *StockInsuficienteError
	// and the caller's transaction must roll back.
	DescontarStockTx(tx *gorm.DB, usuarioID uuid.UUID, p *model.Producto, cantidad int, motivo string, referenciaID *uuid.UUID) error

	// RestaurarStockTx re-adds stock inside the caller's transaction
	// (venta anulada).
	RestaurarStockTx(tx *gorm.DB, usuarioID, productoID uuid.UUID, cantidad int, motivo string, referenciaID *uuid.UUID) error

	// AjustarStock applies a signed manual adjustment in its own transaction.
	AjustarStock(ctx context.Context, usuarioID, productoID uuid.UUID, delta int, motivo string) (*model.Producto, error)

	ObtenerAlertas(ctx context.Context, usuarioID uuid.UUID) ([]dto.AlertaStockResponse, error)
	ListarMovimientos(ctx context.Context, usuarioID, productoID uuid.UUID) ([]dto.MovimientoStockResponse, error)
}

type inventarioService struct {
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewInventarioService(productoRepo repository.ProductoRepository, movimientoRepo repository.MovimientoStockRepository) InventarioService {
	return &inventarioService{productoRepo: productoRepo, movimientoRepo: movimientoRepo}
}

func (s *inventarioService) DescontarStockTx(tx *gorm.DB, usuarioID uuid.UUID, p *model.Producto, cantidad int, motivo string, referenciaID *uuid.UUID) error {
	if cantidad <= 0 {
		return ErrCantidadInvalida
	}

	// Pre-decrement figure for the audit row. The conditional UPDATE below is
	// the authority; this read only feeds stock_anterior/stock_nuevo.
	antes := p.StockActual
	if fresh, err := s.productoRepo.FindByIDTx(tx, usuarioID, p.ID); err == nil {
		antes = fresh.StockActual
	}

	rows, err := s.productoRepo.DescontarStockTx(tx, usuarioID, p.ID, cantidad)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &StockInsuficienteError{
			Producto:   p.Nombre,
			Solicitado: cantidad,
			Disponible: antes,
		}
	}

	return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
		UsuarioID:     usuarioID,
		ProductoID:    p.ID,
		Tipo:          "venta",
		Cantidad:      -cantidad,
		StockAnterior: antes,
		StockNuevo:    antes - cantidad,
		Motivo:        motivo,
		ReferenciaID:  referenciaID,
	})
}

func (s *inventarioService) RestaurarStockTx(tx *gorm.DB, usuarioID, productoID uuid.UUID, cantidad int, motivo string, referenciaID *uuid.UUID) error {
	antes := 0
	if fresh, err := s.productoRepo.FindByIDTx(tx, usuarioID, productoID); err == nil {
		antes = fresh.StockActual
	}

	if _, err := s.productoRepo.AjustarStockTx(tx, usuarioID, productoID, cantidad); err != nil {
		return err
	}

	return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
		UsuarioID:     usuarioID,
		ProductoID:    productoID,
		Tipo:          "anulacion",
		Cantidad:      cantidad,
		StockAnterior: antes,
		StockNuevo:    antes + cantidad,
		Motivo:        motivo,
		ReferenciaID:  referenciaID,
	})
}

func (s *inventarioService) AjustarStock(ctx context.Context, usuarioID, productoID uuid.UUID, delta int, motivo string) (*model.Producto, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if delta == 0 {
		return nil, ErrCantidadInvalida
	}

	p, err := s.productoRepo.FindByID(ctx, usuarioID, productoID)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		rows, err := s.productoRepo.AjustarStockTx(tx, usuarioID, productoID, delta)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Negative adjustment larger than what is on hand.
			return &StockInsuficienteError{
				Producto:   p.Nombre,
				Solicitado: -delta,
				Disponible: p.StockActual,
			}
		}
		return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
			UsuarioID:     usuarioID,
			ProductoID:    productoID,
			Tipo:          "ajuste_manual",
			Cantidad:      delta,
			StockAnterior: p.StockActual,
			StockNuevo:    p.StockActual + delta,
			Motivo:        motivo,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.productoRepo.FindByID(ctx, usuarioID, productoID)
}

func (s *inventarioService) ObtenerAlertas(ctx context.Context, usuarioID uuid.UUID) ([]dto.AlertaStockResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	productos, err := s.productoRepo.ListBajoStock(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(productos))
	for _, p := range productos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ProductoID:  p.ID.String(),
			Nombre:      p.Nombre,
			StockActual: p.StockActual,
			StockMinimo: p.StockMinimo,
		})
	}
	return alertas, nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, usuarioID, productoID uuid.UUID) ([]dto.MovimientoStockResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	movs, err := s.movimientoRepo.ListByProducto(ctx, usuarioID, productoID, 200)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoStockResponse, 0, len(movs))
	for _, m := range movs {
		var ref *string
		if m.ReferenciaID != nil {
			v := m.ReferenciaID.String()
			ref = &v
		}
		resp = append(resp, dto.MovimientoStockResponse{
			ID:            m.ID.String(),
			ProductoID:    m.ProductoID.String(),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			ReferenciaID:  ref,
			CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}
