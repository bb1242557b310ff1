package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	AnularVenta(ctx context.Context, usuarioID, id uuid.UUID, motivo string) error
	ListarVentas(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	inventario   InventarioService
	arqueoRepo   repository.ArqueoRepository
	productoRepo repository.ProductoRepository
	mesaRepo     repository.MesaRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	inventario InventarioService,
	arqueoRepo repository.ArqueoRepository,
	productoRepo repository.ProductoRepository,
	mesaRepo repository.MesaRepository,
) VentaService {
	return &ventaService{
		repo:         repo,
		inventario:   inventario,
		arqueoRepo:   arqueoRepo,
		productoRepo: productoRepo,
		mesaRepo:     mesaRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One atomic unit — all steps commit or none are visible:
//  1. Insert venta header with the server-computed total.
//  2. Insert all items with the catalog price frozen in (price-at-sale).
//  3. Decrement stock per item; any shortage rolls the whole sale back.
//  4. Add the total to the open arqueo's per-method sales column, if one
//     is open. No open arqueo is not an error — the sale still commits.

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if len(req.Items) == 0 {
		return nil, ErrCarritoVacio
	}
	metodo := model.MetodoPago(req.MetodoPago)
	if !metodo.Valido() {
		return nil, ErrMetodoInvalido
	}

	// Resolve products and compute the total outside the transaction. The
	// price read here is the one frozen into the items: later catalog price
	// changes never alter this sale.
	type resolvedItem struct {
		producto *model.Producto
		cantidad int
		precio   decimal.Decimal
	}

	resolved := make([]resolvedItem, 0, len(req.Items))
	total := decimal.Zero

	for _, item := range req.Items {
		if item.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductoNoEncontrado, item.ProductoID)
		}
		p, err := s.productoRepo.FindByID(ctx, usuarioID, pid)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductoNoEncontrado, item.ProductoID)
		}
		if !p.Activo {
			return nil, fmt.Errorf("%w: %s esta inactivo", ErrProductoNoEncontrado, p.Nombre)
		}
		total = total.Add(p.PrecioVenta.Mul(decimal.NewFromInt(int64(item.Cantidad))))
		resolved = append(resolved, resolvedItem{producto: p, cantidad: item.Cantidad, precio: p.PrecioVenta})
	}

	if !total.IsPositive() {
		return nil, ErrMontoInvalido
	}

	var origen *model.Origen
	if req.Origen != nil {
		o := model.Origen(*req.Origen)
		origen = &o
	}
	var mesaID *uuid.UUID
	if req.MesaID != nil {
		mid, err := uuid.Parse(*req.MesaID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMesaNoEncontrada, *req.MesaID)
		}
		if _, err := s.mesaRepo.FindByID(ctx, usuarioID, mid); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMesaNoEncontrada, *req.MesaID)
		}
		mesaID = &mid
	}

	venta := model.Venta{
		UsuarioID:  usuarioID,
		Total:      total,
		MetodoPago: metodo,
		Origen:     origen,
		MesaID:     mesaID,
		Estado:     "completada",
	}
	for _, r := range resolved {
		venta.Items = append(venta.Items, model.VentaItem{
			ProductoID:     r.producto.ID,
			Cantidad:       r.cantidad,
			PrecioUnitario: r.precio,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, r := range resolved {
			ventaRef := venta.ID
			motivo := fmt.Sprintf("Venta %s", venta.ID)
			if err := s.inventario.DescontarStockTx(tx, usuarioID, r.producto, r.cantidad, motivo, &ventaRef); err != nil {
				return err
			}
		}

		// Contribution to the open drawer session. RowsAffected 0 means no
		// session is open; the sale is still valid.
		if _, err := s.arqueoRepo.SumarVentaTx(tx, usuarioID, metodo, total); err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := ventaToResponse(&venta)
	// Enrich items with product names from the resolved slice.
	for i, r := range resolved {
		resp.Items[i].Producto = r.producto.Nombre
	}
	return resp, nil
}

// ── AnularVenta ───────────────────────────────────────────────────────────────
// Ventas are append-only: an annulment never deletes the row. It restores
// stock and writes a compensating (negative) contribution to the session
// that recorded the sale — and only to that one. A session opened after the
// sale never saw its contribution, so its counters must stay untouched.

func (s *ventaService) AnularVenta(ctx context.Context, usuarioID, id uuid.UUID, motivo string) error {
	if usuarioID == uuid.Nil {
		return ErrNoAutenticado
	}
	venta, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return ErrVentaNoEncontrada
	}
	if venta.Estado == "anulada" {
		return errors.New("la venta ya esta anulada")
	}

	// The sale contributed to the session open at the moment it was
	// recorded. If the currently open session started after the sale it is
	// a different drawer; the compensation is skipped and the closed
	// session's figures stand as counted.
	abierto, err := s.arqueoRepo.FindAbierto(ctx, usuarioID)
	if err != nil {
		return err
	}
	var arqueoID *uuid.UUID
	if abierto != nil && !abierto.FechaApertura.After(venta.CreatedAt) {
		arqueoID = &abierto.ID
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range venta.Items {
			ventaRef := venta.ID
			m := fmt.Sprintf("Anulacion venta %s — %s", venta.ID, motivo)
			if err := s.inventario.RestaurarStockTx(tx, usuarioID, item.ProductoID, item.Cantidad, m, &ventaRef); err != nil {
				return err
			}
		}

		if arqueoID != nil {
			if _, err := s.arqueoRepo.SumarVentaArqueoTx(tx, *arqueoID, venta.MetodoPago, venta.Total.Neg()); err != nil {
				return err
			}
		}

		return s.repo.UpdateEstadoTx(tx, id, "anulada")
	})
}

// ListarVentas returns a paginated list of sales, filtered by date, estado
// and origen. Default filter: today's completed sales.
func (s *ventaService) ListarVentas(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Estado == "" {
		filter.Estado = "completada"
	}
	ventas, total, err := s.repo.List(ctx, usuarioID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, *ventaToResponse(&v))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			ProductoID:     item.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))),
		})
	}
	var origen *string
	if v.Origen != nil {
		o := string(*v.Origen)
		origen = &o
	}
	var mesaID *string
	if v.MesaID != nil {
		m := v.MesaID.String()
		mesaID = &m
	}
	return &dto.VentaResponse{
		ID:         v.ID.String(),
		Total:      v.Total,
		MetodoPago: string(v.MetodoPago),
		Origen:     origen,
		MesaID:     mesaID,
		Estado:     v.Estado,
		Items:      items,
		CreatedAt:  v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
