package contract

import (
	"context"

	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
	// DetachChildren sets parent_id to NULL on direct children of the
	// given category. Grandchildren keep their parent pointers.
	DetachChildren(ctx context.Context, parentId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
}
