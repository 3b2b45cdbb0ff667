package contract

import (
	"context"

	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/repository/specification"
)

// NoteRepository persists the note aggregate: the row itself plus its
// four link sets. Create and Update write the links too; Update
// replaces each link set wholesale (set difference against what is
// stored), so it must run inside a unit-of-work transaction.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
}
