package service_test

// In-memory repository stubs. The services open no real transaction when
// DB() returns nil, so every Tx method here simply ignores the *gorm.DB.

import (
	"context"
	"errors"
	"time"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── ProductoRepository ────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func seedProducto(r *stubProductoRepo, usuarioID uuid.UUID, nombre string, precio float64, stock int, minimo int) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		UsuarioID:   usuarioID,
		Nombre:      nombre,
		PrecioVenta: decimal.NewFromFloat(precio),
		StockActual: stock,
		StockMinimo: minimo,
		Activo:      true,
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

// Reads return detached copies, like GORM rows: a later stock mutation in
// the map must not travel back through an earlier read.
func (r *stubProductoRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) FindPublicByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, usuarioID, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context, usuarioID uuid.UUID, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.UsuarioID == usuarioID && p.Activo {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListBajoStock(_ context.Context, usuarioID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.UsuarioID == usuarioID && p.Activo && p.StockActual <= p.StockMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, usuarioID, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok && p.UsuarioID == usuarioID {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, usuarioID, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok && p.UsuarioID == usuarioID {
		p.Activo = true
	}
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, usuarioID, id uuid.UUID, cantidad int) (int64, error) {
	p, ok := r.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return 0, nil
	}
	if p.StockActual < cantidad {
		return 0, nil
	}
	p.StockActual -= cantidad
	return 1, nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, usuarioID, id uuid.UUID, delta int) (int64, error) {
	p, ok := r.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return 0, nil
	}
	if delta < 0 && p.StockActual < -delta {
		return 0, nil
	}
	p.StockActual += delta
	return 1, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── MovimientoStockRepository ─────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByProducto(_ context.Context, usuarioID, productoID uuid.UUID, _ int) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.UsuarioID == usuarioID && m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── ArqueoRepository ──────────────────────────────────────────────────────────

type stubArqueoRepo struct {
	arqueos map[uuid.UUID]*model.Arqueo
}

func newStubArqueoRepo() *stubArqueoRepo {
	return &stubArqueoRepo{arqueos: make(map[uuid.UUID]*model.Arqueo)}
}

func (r *stubArqueoRepo) Create(_ context.Context, a *model.Arqueo) error {
	for _, existing := range r.arqueos {
		if existing.UsuarioID == a.UsuarioID && existing.Abierto() {
			// Mirrors the partial unique index on (usuario_id) WHERE fecha_cierre IS NULL.
			return errors.New(`duplicate key value violates unique constraint "uni_arqueos_abierto_por_usuario" (SQLSTATE 23505)`)
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.arqueos[a.ID] = a
	return nil
}

func (r *stubArqueoRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Arqueo, error) {
	a, ok := r.arqueos[id]
	if !ok || a.UsuarioID != usuarioID {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubArqueoRepo) FindAbierto(_ context.Context, usuarioID uuid.UUID) (*model.Arqueo, error) {
	for _, a := range r.arqueos {
		if a.UsuarioID == usuarioID && a.Abierto() {
			return a, nil
		}
	}
	return nil, nil
}

func sumarVentaEn(a *model.Arqueo, metodo model.MetodoPago, monto decimal.Decimal) {
	switch metodo {
	case model.MetodoEfectivo:
		a.VentasEfectivo = a.VentasEfectivo.Add(monto)
	case model.MetodoTarjeta:
		a.VentasTarjeta = a.VentasTarjeta.Add(monto)
	case model.MetodoTransferencia:
		a.VentasTransferencia = a.VentasTransferencia.Add(monto)
	case model.MetodoCuentaCorriente:
		a.VentasCuentaCorriente = a.VentasCuentaCorriente.Add(monto)
	case model.MetodoQR:
		a.VentasQR = a.VentasQR.Add(monto)
	default:
		a.VentasOtro = a.VentasOtro.Add(monto)
	}
}

func sumarGastoEn(a *model.Arqueo, metodo model.MetodoPago, monto decimal.Decimal) {
	switch metodo {
	case model.MetodoEfectivo:
		a.GastosEfectivo = a.GastosEfectivo.Add(monto)
	case model.MetodoTarjeta:
		a.GastosTarjeta = a.GastosTarjeta.Add(monto)
	case model.MetodoTransferencia:
		a.GastosTransferencia = a.GastosTransferencia.Add(monto)
	case model.MetodoCuentaCorriente:
		a.GastosCuentaCorriente = a.GastosCuentaCorriente.Add(monto)
	case model.MetodoQR:
		a.GastosQR = a.GastosQR.Add(monto)
	default:
		a.GastosOtro = a.GastosOtro.Add(monto)
	}
}

func (r *stubArqueoRepo) SumarVentaTx(_ *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	for _, a := range r.arqueos {
		if a.UsuarioID != usuarioID || !a.Abierto() {
			continue
		}
		sumarVentaEn(a, metodo, monto)
		return 1, nil
	}
	return 0, nil
}

func (r *stubArqueoRepo) SumarGastoTx(_ *gorm.DB, usuarioID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	for _, a := range r.arqueos {
		if a.UsuarioID != usuarioID || !a.Abierto() {
			continue
		}
		sumarGastoEn(a, metodo, monto)
		return 1, nil
	}
	return 0, nil
}

func (r *stubArqueoRepo) SumarVentaArqueoTx(_ *gorm.DB, arqueoID uuid.UUID, metodo model.MetodoPago, monto decimal.Decimal) (int64, error) {
	a, ok := r.arqueos[arqueoID]
	if !ok || !a.Abierto() {
		return 0, nil
	}
	sumarVentaEn(a, metodo, monto)
	return 1, nil
}

func (r *stubArqueoRepo) CerrarTx(_ *gorm.DB, id uuid.UUID, declarado decimal.Decimal, cierre time.Time) (int64, error) {
	a, ok := r.arqueos[id]
	if !ok || !a.Abierto() {
		return 0, nil
	}
	// Same semantics as the SQL close: esperado comes from the row's own
	// columns at the instant of the update.
	esperado := a.Esperado()
	diferencia := declarado.Sub(esperado)
	a.FechaCierre = &cierre
	a.SaldoEsperado = &esperado
	a.SaldoDeclarado = &declarado
	a.Diferencia = &diferencia
	return 1, nil
}

func (r *stubArqueoRepo) ListCerrados(_ context.Context, usuarioID uuid.UUID, page, limit int) ([]model.Arqueo, int64, error) {
	var out []model.Arqueo
	for _, a := range r.arqueos {
		if a.UsuarioID == usuarioID && !a.Abierto() {
			out = append(out, *a)
		}
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *stubArqueoRepo) DB() *gorm.DB { return nil }

var _ repository.ArqueoRepository = (*stubArqueoRepo)(nil)

// ── VentaRepository ───────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok || v.UsuarioID != usuarioID {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return errors.New("not found")
	}
	v.Estado = estado
	return nil
}

func (r *stubVentaRepo) List(_ context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.UsuarioID != usuarioID {
			continue
		}
		if filter.Estado != "" && filter.Estado != "all" && v.Estado != filter.Estado {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── MesaRepository ────────────────────────────────────────────────────────────

type stubMesaRepo struct {
	mesas map[uuid.UUID]*model.Mesa
}

func newStubMesaRepo() *stubMesaRepo {
	return &stubMesaRepo{mesas: make(map[uuid.UUID]*model.Mesa)}
}

func seedMesa(r *stubMesaRepo, usuarioID uuid.UUID, nombre string) *model.Mesa {
	m := &model.Mesa{
		ID:        uuid.New(),
		UsuarioID: usuarioID,
		Nombre:    nombre,
		Estado:    "cerrada",
	}
	r.mesas[m.ID] = m
	return m
}

func (r *stubMesaRepo) Create(_ context.Context, m *model.Mesa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok || m.UsuarioID != usuarioID {
		return nil, errors.New("not found")
	}
	cp := *m
	return &cp, nil
}

func (r *stubMesaRepo) List(_ context.Context, usuarioID uuid.UUID) ([]model.Mesa, error) {
	var out []model.Mesa
	for _, m := range r.mesas {
		if m.UsuarioID == usuarioID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMesaRepo) Update(_ context.Context, m *model.Mesa) error {
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) error {
	if m, ok := r.mesas[id]; ok && m.UsuarioID == usuarioID {
		delete(r.mesas, id)
	}
	return nil
}

var _ repository.MesaRepository = (*stubMesaRepo)(nil)

// ── GastoRepository ───────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos []model.Gasto
}

func (r *stubGastoRepo) CreateTx(_ *gorm.DB, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt = time.Now()
	r.gastos = append(r.gastos, *g)
	return nil
}

func (r *stubGastoRepo) List(_ context.Context, usuarioID uuid.UUID, filter dto.GastoFilter) ([]model.Gasto, int64, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.UsuarioID != usuarioID {
			continue
		}
		if filter.Categoria != "" && g.Categoria != filter.Categoria {
			continue
		}
		out = append(out, g)
	}
	return out, int64(len(out)), nil
}

func (r *stubGastoRepo) DB() *gorm.DB { return nil }

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── UsuarioRepository ─────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
