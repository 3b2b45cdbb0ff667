package contract

import (
	"context"

	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/repository/specification"
)

type LabelRepository interface {
	Create(ctx context.Context, label *entity.Label) error
	Update(ctx context.Context, label *entity.Label) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Label, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Label, error)
}

type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	Update(ctx context.Context, color *entity.Color) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Color, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Color, error)
}
