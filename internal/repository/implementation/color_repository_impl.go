package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/mapper"
	"github.com/tavor118/notes/internal/model"
	"github.com/tavor118/notes/internal/repository/contract"
	"github.com/tavor118/notes/internal/repository/specification"
)

type ColorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ColorMapper
}

func NewColorRepository(db *gorm.DB) contract.ColorRepository {
	return &ColorRepositoryImpl{
		db:     db,
		mapper: mapper.NewColorMapper(),
	}
}

func (r *ColorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ColorRepositoryImpl) Create(ctx context.Context, color *entity.Color) error {
	m := r.mapper.ToModel(color)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*color = *r.mapper.ToEntity(m)
	return nil
}

func (r *ColorRepositoryImpl) Update(ctx context.Context, color *entity.Color) error {
	m := r.mapper.ToModel(color)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*color = *r.mapper.ToEntity(m)
	return nil
}

func (r *ColorRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	// Notes keep existing without a color.
	if err := db.Model(&model.Note{}).
		Where("color_id = ?", id).
		Update("color_id", nil).Error; err != nil {
		return err
	}
	return db.Delete(&model.Color{}, id).Error
}

func (r *ColorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Color, error) {
	var m model.Color
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ColorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Color, error) {
	var models []*model.Color
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
