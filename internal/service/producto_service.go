package service

import (
	"context"

	"github.com/milagrosarganin/x3-padel-center-website/internal/dto"
	"github.com/milagrosarganin/x3-padel-center-website/internal/model"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ProductoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, usuarioID, id uuid.UUID) error
	Reactivar(ctx context.Context, usuarioID, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func (s *productoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}

	p := &model.Producto{
		UsuarioID:   usuarioID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		PrecioCosto: req.PrecioCosto,
		PrecioVenta: req.PrecioVenta,
		StockActual: req.StockActual,
		StockMinimo: req.StockMinimo,
		Activo:      true,
	}
	if req.ProveedorID != nil {
		if pid, err := uuid.Parse(*req.ProveedorID); err == nil {
			p.ProveedorID = &pid
		}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProductoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	p, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, usuarioID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, *productoToResponse(&p))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if usuarioID == uuid.Nil {
		return nil, ErrNoAutenticado
	}
	p, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.PrecioCosto != nil {
		p.PrecioCosto = *req.PrecioCosto
	}
	if req.PrecioVenta != nil {
		if !req.PrecioVenta.IsPositive() {
			return nil, ErrMontoInvalido
		}
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.ProveedorID != nil {
		if pid, err := uuid.Parse(*req.ProveedorID); err == nil {
			p.ProveedorID = &pid
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCachePrecio(ctx, id)
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, usuarioID, id uuid.UUID) error {
	if usuarioID == uuid.Nil {
		return ErrNoAutenticado
	}
	if err := s.repo.SoftDelete(ctx, usuarioID, id); err != nil {
		return err
	}
	s.invalidarCachePrecio(ctx, id)
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, usuarioID, id uuid.UUID) error {
	if usuarioID == uuid.Nil {
		return ErrNoAutenticado
	}
	return s.repo.Reactivar(ctx, usuarioID, id)
}

// invalidarCachePrecio drops the public price-check cache entry after any
// price-affecting change. Best effort: a stale entry expires by TTL anyway.
func (s *productoService) invalidarCachePrecio(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, "precio:"+id.String()).Err(); err != nil {
		log.Debug().Err(err).Str("producto_id", id.String()).Msg("no se pudo invalidar cache de precio")
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	var provID *string
	if p.ProveedorID != nil {
		v := p.ProveedorID.String()
		provID = &v
	}
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		PrecioCosto: p.PrecioCosto,
		PrecioVenta: p.PrecioVenta,
		StockActual: p.StockActual,
		StockMinimo: p.StockMinimo,
		ProveedorID: provID,
		Activo:      p.Activo,
	}
}
