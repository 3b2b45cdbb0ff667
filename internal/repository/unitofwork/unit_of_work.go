package unitofwork

import (
	"context"

	"github.com/tavor118/notes/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	CategoryRepository() contract.CategoryRepository
	LabelRepository() contract.LabelRepository
	ColorRepository() contract.ColorRepository
	AttachmentRepository() contract.AttachmentRepository
}
