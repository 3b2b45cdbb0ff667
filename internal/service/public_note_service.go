package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/repository/specification"
	"github.com/tavor118/notes/internal/repository/unitofwork"
)

const (
	publicNoteListKey      = "public:notes"
	publicNoteDetailKeyFmt = "public:note:%d"
)

// IPublicNoteService serves the read-only unauthenticated note
// projections. Responses are cached until a note mutation flushes the
// cache or the TTL expires.
type IPublicNoteService interface {
	List(ctx context.Context) ([]*dto.PublicNoteListItem, error)
	Show(ctx context.Context, id uint) (*dto.PublicNoteDetail, error)
	Flush()
}

type publicNoteService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewPublicNoteService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) IPublicNoteService {
	return &publicNoteService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *publicNoteService) List(ctx context.Context) ([]*dto.PublicNoteListItem, error) {
	if cached, ok := s.cache.Get(publicNoteListKey); ok {
		return cached.([]*dto.PublicNoteListItem), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.OrderBy{Field: "notes.id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PublicNoteListItem, 0, len(notes))
	for _, note := range notes {
		colorHex, err := s.colorHex(ctx, uow, note.ColorId)
		if err != nil {
			return nil, err
		}
		categories, err := categorySummaries(ctx, uow, note.CategoryIds)
		if err != nil {
			return nil, err
		}
		labels, err := labelSummaries(ctx, uow, note.LabelIds)
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.PublicNoteListItem{
			Id:       note.Id,
			Title:    note.DisplayTitle(),
			Color:    colorHex,
			Category: categories,
			Label:    labels,
		})
	}

	s.cache.Set(publicNoteListKey, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *publicNoteService) Show(ctx context.Context, id uint) (*dto.PublicNoteDetail, error) {
	key := fmt.Sprintf(publicNoteDetailKeyFmt, id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.PublicNoteDetail), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: note.OwnerId})
	if err != nil {
		return nil, err
	}
	ownerName := ""
	if owner != nil {
		ownerName = owner.Username
	}

	colorHex, err := s.colorHex(ctx, uow, note.ColorId)
	if err != nil {
		return nil, err
	}
	categories, err := categorySummaries(ctx, uow, note.CategoryIds)
	if err != nil {
		return nil, err
	}
	labels, err := labelSummaries(ctx, uow, note.LabelIds)
	if err != nil {
		return nil, err
	}
	files, err := fileSummaries(ctx, uow, note.AttachmentIds)
	if err != nil {
		return nil, err
	}

	detail := &dto.PublicNoteDetail{
		Id:       note.Id,
		Title:    note.DisplayTitle(),
		Content:  note.Content,
		Color:    colorHex,
		Owner:    ownerName,
		Category: categories,
		Label:    labels,
		File:     files,
	}

	s.cache.Set(key, detail, gocache.DefaultExpiration)
	return detail, nil
}

func (s *publicNoteService) Flush() {
	s.cache.Flush()
}

func (s *publicNoteService) colorHex(ctx context.Context, uow unitofwork.UnitOfWork, colorId *uint) (*string, error) {
	if colorId == nil {
		return nil, nil
	}
	color, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: *colorId})
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, nil
	}
	return &color.Color, nil
}

// Shared projection helpers. Link ids come back from the repository in
// ascending order, so the summaries preserve that order.

func categorySummaries(ctx context.Context, uow unitofwork.UnitOfWork, ids []uint) ([]dto.CategorySummary, error) {
	result := make([]dto.CategorySummary, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: ids}, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		result = append(result, dto.CategorySummary{Id: c.Id, Title: c.Title})
	}
	return result, nil
}

func labelSummaries(ctx context.Context, uow unitofwork.UnitOfWork, ids []uint) ([]dto.LabelSummary, error) {
	result := make([]dto.LabelSummary, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	labels, err := uow.LabelRepository().FindAll(ctx, specification.ByIDs{IDs: ids}, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		result = append(result, dto.LabelSummary{Id: l.Id, Title: l.Title})
	}
	return result, nil
}

func fileSummaries(ctx context.Context, uow unitofwork.UnitOfWork, ids []uint) ([]dto.FileSummary, error) {
	result := make([]dto.FileSummary, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	files, err := uow.AttachmentRepository().FindAll(ctx, specification.ByIDs{IDs: ids}, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		result = append(result, attachmentToFileSummary(f))
	}
	return result, nil
}

func attachmentToFileSummary(a *entity.Attachment) dto.FileSummary {
	return dto.FileSummary{Id: a.Id, Title: a.Title, File: a.FilePath}
}

func userSummaries(ctx context.Context, uow unitofwork.UnitOfWork, ids []uint) ([]dto.UserSummary, error) {
	result := make([]dto.UserSummary, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids}, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result = append(result, dto.UserSummary{Id: u.Id, Username: u.Username})
	}
	return result, nil
}

// NewPublicNoteCache builds the cache used by the public projections.
func NewPublicNoteCache(ttl time.Duration) *gocache.Cache {
	return gocache.New(ttl, 2*ttl)
}
