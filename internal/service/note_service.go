package service

import (
	"context"
	"time"

	"github.com/tavor118/notes/internal/authz"
	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/repository/specification"
	"github.com/tavor118/notes/internal/repository/unitofwork"
)

type INoteService interface {
	List(ctx context.Context, userId uint) ([]*dto.NoteListItem, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.NoteDetailResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteListItem, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteListItem, error)
	Delete(ctx context.Context, userId uint, id uint) error
}

type noteService struct {
	uowFactory  unitofwork.RepositoryFactory
	publicNotes IPublicNoteService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publicNotes IPublicNoteService) INoteService {
	return &noteService{
		uowFactory:  uowFactory,
		publicNotes: publicNotes,
	}
}

func (s *noteService) List(ctx context.Context, userId uint) ([]*dto.NoteListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.VisibleTo{UserID: userId})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteListItem, 0, len(notes))
	for _, note := range notes {
		item, err := s.toListItem(ctx, uow, note)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *noteService) Show(ctx context.Context, userId uint, id uint) (*dto.NoteDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}
	if !authz.CanRead(authz.UserActor(userId), note) {
		return nil, apperror.Forbidden("you do not have access to this note")
	}

	item, err := s.toListItem(ctx, uow, note)
	if err != nil {
		return nil, err
	}

	// Edit form catalogs: every label, the caller's own files sorted
	// by title, and every user except the owner sorted by username.
	allLabels, err := uow.LabelRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	labels := make([]dto.LabelSummary, 0, len(allLabels))
	for _, l := range allLabels {
		labels = append(labels, dto.LabelSummary{Id: l.Id, Title: l.Title})
	}

	ownFiles, err := uow.AttachmentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "title"},
	)
	if err != nil {
		return nil, err
	}
	files := make([]dto.FileSummary, 0, len(ownFiles))
	for _, f := range ownFiles {
		files = append(files, attachmentToFileSummary(f))
	}

	otherUsers, err := uow.UserRepository().FindAll(ctx,
		specification.ExcludeUser{UserID: note.OwnerId},
		specification.OrderBy{Field: "username"},
	)
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserSummary, 0, len(otherUsers))
	for _, u := range otherUsers {
		users = append(users, dto.UserSummary{Id: u.Id, Username: u.Username})
	}

	return &dto.NoteDetailResponse{
		Note:   *item,
		Labels: labels,
		Files:  files,
		Users:  users,
	}, nil
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	err := s.validateLinks(ctx, uow, req.Color, req.Category, req.Label, req.File, req.Delegated)
	if err != nil {
		return nil, err
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}

	note := entity.Note{
		Title:         title,
		Content:       req.Content,
		ColorId:       req.Color,
		OwnerId:       userId,
		CategoryIds:   req.Category,
		LabelIds:      req.Label,
		AttachmentIds: req.File,
		DelegatedIds:  dropUser(req.Delegated, userId),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err = uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	err = uow.NoteRepository().Create(ctx, &note)
	if err != nil {
		return nil, err
	}

	err = uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publicNotes.Flush()
	return s.toListItem(ctx, uow, &note)
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}
	if !authz.CanWrite(authz.UserActor(userId), note) {
		return nil, apperror.Forbidden("you do not have access to this note")
	}

	err = s.validateLinks(ctx, uow, req.Color, req.Category, req.Label, req.File, req.Delegated)
	if err != nil {
		return nil, err
	}

	// Whole resource replace: omitted fields reset to their zero
	// state, including the title and each link set.
	note.Title = ""
	if req.Title != nil {
		note.Title = *req.Title
	}
	note.Content = req.Content
	note.ColorId = req.Color
	note.CategoryIds = req.Category
	note.LabelIds = req.Label
	note.AttachmentIds = req.File
	note.DelegatedIds = dropUser(req.Delegated, note.OwnerId)
	note.UpdatedAt = time.Now()

	err = uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	err = uow.NoteRepository().Update(ctx, note)
	if err != nil {
		return nil, err
	}

	err = uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publicNotes.Flush()
	return s.toListItem(ctx, uow, note)
}

func (s *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note")
	}
	if !authz.CanDelete(authz.UserActor(userId), note) {
		return apperror.Forbidden("only the owner can delete a note")
	}

	err = uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	err = uow.NoteRepository().Delete(ctx, id)
	if err != nil {
		return err
	}

	err = uow.Commit()
	if err != nil {
		return err
	}

	s.publicNotes.Flush()
	return nil
}

// validateLinks rejects references to rows that do not exist. Any
// existing attachment may be linked, so a delegate can attach files
// they uploaded themselves.
func (s *noteService) validateLinks(ctx context.Context, uow unitofwork.UnitOfWork, colorId *uint, categoryIds, labelIds, fileIds, delegatedIds []uint) error {
	if colorId != nil {
		color, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: *colorId})
		if err != nil {
			return err
		}
		if color == nil {
			return apperror.ValidationMsg("color", "Color does not exist.")
		}
	}

	if len(categoryIds) > 0 {
		categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: categoryIds})
		if err != nil {
			return err
		}
		if missingIds(categoryIds, len(categories)) {
			return apperror.ValidationMsg("category", "One or more categories do not exist.")
		}
	}

	if len(labelIds) > 0 {
		labels, err := uow.LabelRepository().FindAll(ctx, specification.ByIDs{IDs: labelIds})
		if err != nil {
			return err
		}
		if missingIds(labelIds, len(labels)) {
			return apperror.ValidationMsg("label", "One or more labels do not exist.")
		}
	}

	if len(fileIds) > 0 {
		files, err := uow.AttachmentRepository().FindAll(ctx, specification.ByIDs{IDs: fileIds})
		if err != nil {
			return err
		}
		if missingIds(fileIds, len(files)) {
			return apperror.ValidationMsg("file", "One or more files do not exist.")
		}
	}

	if len(delegatedIds) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: delegatedIds})
		if err != nil {
			return err
		}
		if missingIds(delegatedIds, len(users)) {
			return apperror.ValidationMsg("delegated", "One or more users do not exist.")
		}
	}

	return nil
}

func missingIds(requested []uint, found int) bool {
	unique := make(map[uint]struct{}, len(requested))
	for _, id := range requested {
		unique[id] = struct{}{}
	}
	return found < len(unique)
}

func dropUser(ids []uint, userId uint) []uint {
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != userId {
			result = append(result, id)
		}
	}
	return result
}

func (s *noteService) toListItem(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) (*dto.NoteListItem, error) {
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: note.OwnerId})
	if err != nil {
		return nil, err
	}
	ownerSummary := dto.UserSummary{Id: note.OwnerId}
	if owner != nil {
		ownerSummary.Username = owner.Username
	}

	var color *dto.ColorResponse
	if note.ColorId != nil {
		c, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: *note.ColorId})
		if err != nil {
			return nil, err
		}
		if c != nil {
			color = &dto.ColorResponse{Id: c.Id, Color: c.Color}
		}
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
	delegated, err := userSummaries(ctx, uow, note.DelegatedIds)
	if err != nil {
		return nil, err
	}

	return &dto.NoteListItem{
		Id:        note.Id,
		Title:     note.DisplayTitle(),
		Content:   note.Content,
		Color:     color,
		Owner:     ownerSummary,
		Category:  categories,
		Label:     labels,
		File:      files,
		Delegated: delegated,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}, nil
}
