package service

import (
	"context"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
)

// MesaService manages the gastro tables. A mesa is created closed; the bar
// opens it while serving and closes it again when the table settles up.
type MesaService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearMesaRequest) (*dto.MesaResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.MesaResponse, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error)
	Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func (s *mesaService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearMesaRequest) (*dto.MesaResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	m := &model.Mesa{
		UsuarioID: usuarioID,
		Nombre:    req.Nombre,
		Estado:    "cerrada",
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return mesaToResponse(m), nil
}

func (s *mesaService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.MesaResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	mesas, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MesaResponse, 0, len(mesas))
	for _, m := range mesas {
		resp = append(resp, *mesaToResponse(&m))
	}
	return resp, nil
}

func (s *mesaService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	m, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, ErrMesaNoEncontrada
	}
	if req.Nombre != "" {
		m.Nombre = req.Nombre
	}
	if req.Estado != nil {
		m.Estado = *req.Estado
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return mesaToResponse(m), nil
}

func (s *mesaService) Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error {
	if usuarioID == uuid.Nil {
		return ErrNoAutenticado
	}
	if _, err := s.repo.FindByID(ctx, usuarioID, id); err != nil {
		return ErrMesaNoEncontrada
	}
	return s.repo.Delete(ctx, usuarioID, id)
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	return &dto.MesaResponse{
		ID:     m.ID.String(),
		Nombre: m.Nombre,
		Estado: m.Estado,
	}
}
