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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(m)
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	// Save skips NULLing a cleared parent, so write the parent column
	// explicitly.
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"title":     m.Title,
			"parent_id": m.ParentId,
		}).Error
	if err != nil {
		return err
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	// Notes referencing the category lose the link, not the note.
	if err := db.Where("category_id = ?", id).Delete(&model.NoteCategory{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.Category{}, id).Error
}

func (r *CategoryRepositoryImpl) DetachChildren(ctx context.Context, parentId uint) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("parent_id = ?", parentId).
		Update("parent_id", nil).Error
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
