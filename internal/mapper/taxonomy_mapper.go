package mapper

import (
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:        c.Id,
		Title:     c.Title,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:        c.Id,
		Title:     c.Title,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type LabelMapper struct{}

func NewLabelMapper() *LabelMapper {
	return &LabelMapper{}
}

func (m *LabelMapper) ToEntity(l *model.Label) *entity.Label {
	if l == nil {
		return nil
	}
	return &entity.Label{Id: l.Id, Title: l.Title, CreatedAt: l.CreatedAt}
}

func (m *LabelMapper) ToModel(l *entity.Label) *model.Label {
	if l == nil {
		return nil
	}
	return &model.Label{Id: l.Id, Title: l.Title, CreatedAt: l.CreatedAt}
}

func (m *LabelMapper) ToEntities(labels []*model.Label) []*entity.Label {
	entities := make([]*entity.Label, len(labels))
	for i, l := range labels {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

type ColorMapper struct{}

func NewColorMapper() *ColorMapper {
	return &ColorMapper{}
}

func (m *ColorMapper) ToEntity(c *model.Color) *entity.Color {
	if c == nil {
		return nil
	}
	return &entity.Color{Id: c.Id, Color: c.Color}
}

func (m *ColorMapper) ToModel(c *entity.Color) *model.Color {
	if c == nil {
		return nil
	}
	return &model.Color{Id: c.Id, Color: c.Color}
}

func (m *ColorMapper) ToEntities(colors []*model.Color) []*entity.Color {
	entities := make([]*entity.Color, len(colors))
	for i, c := range colors {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
