package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"
	"github.com/milagrosarganin/x3-padel-center-website/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ArqueoService owns the cash-drawer session lifecycle: Closed → Open →
// Closed. There is at most one open session per user; sales and expenses
// recorded while it is open accumulate into its per-method totals, and the
// close computes the expected balance and its variance against the counted
// amount.
type ArqueoService interface {
	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirArqueoRequest) (*dto.ArqueoResponse, error)
	Cerrar(ctx context.Context, usuarioID uuid.UUID, req dto.CerrarArqueoRequest) (*dto.ArqueoResponse, error)
	Activo(ctx context.Context, usuarioID uuid.UUID) (*dto.ArqueoResponse, error)
	Historial(ctx context.Context, usuarioID uuid.UUID, page, limit int) (*dto.ArqueoListResponse, error)
}

type arqueoService struct {
	repo       repository.ArqueoRepository
	dispatcher *worker.Dispatcher
}

func NewArqueoService(repo repository.ArqueoRepository, dispatcher *worker.Dispatcher) ArqueoService {
	return &arqueoService{repo: repo, dispatcher: dispatcher}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *arqueoService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirArqueoRequest) (*dto.ArqueoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}

	// Friendly pre-check. The partial unique index on
	// (usuario_id) WHERE fecha_cierre IS NULL is the authority under
	// concurrent opens — a lost race surfaces as a constraint violation.
	if abierto, err := s.repo.FindAbierto(ctx, usuarioID); err != nil {
		return nil, err
	} else if abierto != nil {
		return nil, ErrArqueoYaAbierto
	}

	arqueo := &model.Arqueo{
		UsuarioID:     usuarioID,
		FechaApertura: time.Now().UTC(),
		SaldoInicial:  req.SaldoInicial,
		Comentarios:   req.Comentarios,
	}
	if err := s.repo.Create(ctx, arqueo); err != nil {
		if esViolacionUnicidad(err) {
			return nil, ErrArqueoYaAbierto
		}
		return nil, err
	}

	return arqueoToResponse(arqueo), nil
}

// esViolacionUnicidad detects the duplicate-open constraint without binding
// the service to a specific driver error type.
func esViolacionUnicidad(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "SQLSTATE 23505")
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// expected = saldo_inicial + Σ ventas − Σ gastos (all methods);
// diferencia = declarado − expected. Both are computed inside the closing
// UPDATE from the row's own columns, so a sale committing between our read
// and the close is still counted. The UPDATE is guarded by
// fecha_cierre IS NULL so a second concurrent close loses and gets
// ErrSinArqueoAbierto.

func (s *arqueoService) Cerrar(ctx context.Context, usuarioID uuid.UUID, req dto.CerrarArqueoRequest) (*dto.ArqueoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}

	arqueo, err := s.repo.FindAbierto(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if arqueo == nil {
		return nil, ErrSinArqueoAbierto
	}

	cierre := time.Now().UTC()
	rows, err := s.repo.CerrarTx(s.repo.DB(), arqueo.ID, req.SaldoDeclarado, cierre)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Someone closed it between our read and the update.
		return nil, ErrSinArqueoAbierto
	}

	cerrado, err := s.repo.FindByID(ctx, usuarioID, arqueo.ID)
	if err != nil {
		return nil, err
	}

	// Resumen por email — best effort, never fails the close.
	if s.dispatcher != nil {
		payload := worker.ResumenArqueoPayload{
			ArqueoID:       cerrado.ID.String(),
			FechaApertura:  cerrado.FechaApertura.Format(time.RFC3339),
			FechaCierre:    cierre.Format(time.RFC3339),
			SaldoInicial:   cerrado.SaldoInicial.StringFixed(2),
			TotalVentas:    cerrado.TotalVentas().StringFixed(2),
			TotalGastos:    cerrado.TotalGastos().StringFixed(2),
			SaldoEsperado:  cerrado.SaldoEsperado.StringFixed(2),
			SaldoDeclarado: cerrado.SaldoDeclarado.StringFixed(2),
			Diferencia:     cerrado.Diferencia.StringFixed(2),
		}
		if err := s.dispatcher.EnqueueResumenArqueo(ctx, payload); err != nil {
			log.Warn().Err(err).Str("arqueo_id", cerrado.ID.String()).Msg("no se pudo encolar resumen de arqueo")
		}
	}

	return arqueoToResponse(cerrado), nil
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (s *arqueoService) Activo(ctx context.Context, usuarioID uuid.UUID) (*dto.ArqueoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	arqueo, err := s.repo.FindAbierto(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if arqueo == nil {
		return nil, nil
	}
	return arqueoToResponse(arqueo), nil
}

func (s *arqueoService) Historial(ctx context.Context, usuarioID uuid.UUID, page, limit int) (*dto.ArqueoListResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	arqueos, total, err := s.repo.ListCerrados(ctx, usuarioID, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ArqueoResponse, 0, len(arqueos))
	for _, a := range arqueos {
		data = append(data, *arqueoToResponse(&a))
	}
	return &dto.ArqueoListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func arqueoToResponse(a *model.Arqueo) *dto.ArqueoResponse {
	ventas := dto.MontosPorMetodo{
		Efectivo:        a.VentasEfectivo,
		Tarjeta:         a.VentasTarjeta,
		Transferencia:   a.VentasTransferencia,
		CuentaCorriente: a.VentasCuentaCorriente,
		QR:              a.VentasQR,
		Otro:            a.VentasOtro,
		Total:           a.TotalVentas(),
	}
	gastos := dto.MontosPorMetodo{
		Efectivo:        a.GastosEfectivo,
		Tarjeta:         a.GastosTarjeta,
		Transferencia:   a.GastosTransferencia,
		CuentaCorriente: a.GastosCuentaCorriente,
		QR:              a.GastosQR,
		Otro:            a.GastosOtro,
		Total:           a.TotalGastos(),
	}

	resp := &dto.ArqueoResponse{
		ID:            a.ID.String(),
		FechaApertura: a.FechaApertura.Format("2006-01-02T15:04:05Z"),
		SaldoInicial:  a.SaldoInicial,
		Comentarios:   a.Comentarios,
		Ventas:        ventas,
		Gastos:        gastos,
	}
	if a.FechaCierre != nil {
		t := a.FechaCierre.Format("2006-01-02T15:04:05Z")
		resp.FechaCierre = &t
	}
	resp.SaldoEsperado = a.SaldoEsperado
	resp.SaldoDeclarado = a.SaldoDeclarado
	resp.Diferencia = a.Diferencia
	return resp
}
