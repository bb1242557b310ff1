package repository

import (
	"context"

	"github.com/milagrosarganin/x3-padel-center-website/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MesaRepository interface {
	Create(ctx context.Context, m *model.Mesa) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Mesa, error)
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Mesa, error)
	Update(ctx context.Context, m *model.Mesa) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) Create(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mesaRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mesaRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Mesa, error) {
	var mesas []model.Mesa
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("nombre ASC").
		Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) Update(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete removes the table. Past ventas keep their mesa_id as a historical
// reference; they are never touched.
func (r *mesaRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Delete(&model.Mesa{}).Error
}
