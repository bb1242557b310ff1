package service

import (
	"context"
	"time"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GastoService interface {
	RegistrarGasto(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error)
	ListarGastos(ctx context.Context, usuarioID uuid.UUID, filter dto.GastoFilter) (*dto.GastoListResponse, error)
}

type gastoService struct {
	repo       repository.GastoRepository
	arqueoRepo repository.ArqueoRepository
}

func NewGastoService(repo repository.GastoRepository, arqueoRepo repository.ArqueoRepository) GastoService {
	return &gastoService{repo: repo, arqueoRepo: arqueoRepo}
}

// RegistrarGasto persists the expense and, in the same transaction, adds its
// amount to the open arqueo's per-method expense column. No open arqueo is
// not an error: the expense still commits, only the aggregation is skipped.
func (s *gastoService) RegistrarGasto(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	metodo := model.MetodoPago(req.MetodoPago)
	if !metodo.Valido() {
		return nil, ErrMetodoInvalido
	}

	categoria := req.Categoria
	if categoria == "" {
		categoria = "general"
	}

	gasto := &model.Gasto{
		UsuarioID:   usuarioID,
		Fecha:       time.Now().UTC(),
		Monto:       req.Monto,
		MetodoPago:  metodo,
		Descripcion: req.Descripcion,
		Categoria:   categoria,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, gasto); err != nil {
			return err
		}
		_, err := s.arqueoRepo.SumarGastoTx(tx, usuarioID, metodo, req.Monto)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return gastoToResponse(gasto), nil
}

func (s *gastoService) ListarGastos(ctx context.Context, usuarioID uuid.UUID, filter dto.GastoFilter) (*dto.GastoListResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	gastos, total, err := s.repo.List(ctx, usuarioID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		data = append(data, *gastoToResponse(&g))
	}
	return &dto.GastoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID.String(),
		Fecha:       g.Fecha.Format("2006-01-02T15:04:05Z"),
		Monto:       g.Monto,
		MetodoPago:  string(g.MetodoPago),
		Descripcion: g.Descripcion,
		Categoria:   g.Categoria,
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
