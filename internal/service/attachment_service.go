package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/pkg/logger"
	"github.com/tavor118/notes/internal/repository/specification"
	"github.com/tavor118/notes/internal/repository/unitofwork"
	"github.com/tavor118/notes/pkg/storage"
)

type CreateAttachmentInput struct {
	Title           string
	Filename        string
	File            io.Reader
	PreviewFilename string
	Preview         io.Reader // nil when no preview was uploaded
}

// IAttachmentService manages file records and their bytes on disk.
// Every operation is scoped to the owner; delegates see attachments
// only through the notes they are delegated on.
type IAttachmentService interface {
	List(ctx context.Context, userId uint) ([]*dto.AttachmentResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.AttachmentResponse, error)
	Create(ctx context.Context, userId uint, input *CreateAttachmentInput) (*dto.AttachmentResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateAttachmentRequest) (*dto.AttachmentResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
}

type attachmentService struct {
	uowFactory  unitofwork.RepositoryFactory
	store       storage.Storage
	publicNotes IPublicNoteService
	log         logger.ILogger
}

func NewAttachmentService(
	uowFactory unitofwork.RepositoryFactory,
	store storage.Storage,
	publicNotes IPublicNoteService,
	log logger.ILogger,
) IAttachmentService {
	return &attachmentService{
		uowFactory:  uowFactory,
		store:       store,
		publicNotes: publicNotes,
		log:         log,
	}
}

func (s *attachmentService) List(ctx context.Context, userId uint) ([]*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachments, err := uow.AttachmentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, toAttachmentResponse(a))
	}
	return result, nil
}

func (s *attachmentService) Show(ctx context.Context, userId uint, id uint) (*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachment, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toAttachmentResponse(attachment), nil
}

func (s *attachmentService) Create(ctx context.Context, userId uint, input *CreateAttachmentInput) (*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.Unauthenticated("unknown user")
	}

	// Unique filename so two uploads with the same name never clash.
	filename := fmt.Sprintf("%s_%s", uuid.NewString()[:8], path.Base(input.Filename))
	filePath, err := s.store.SaveFile(owner.Username, filename, input.File)
	if err != nil {
		return nil, apperror.Internal("store file", err)
	}

	var previewPath *string
	if input.Preview != nil {
		previewName := fmt.Sprintf("%s_%s", uuid.NewString()[:8], path.Base(input.PreviewFilename))
		p, err := s.store.SavePreview(owner.Username, previewName, input.Preview)
		if err != nil {
			return nil, apperror.Internal("store preview", err)
		}
		previewPath = &p
	}

	title := input.Title
	if title == "" {
		title = "No name"
	}

	attachment := entity.Attachment{
		Title:       title,
		OwnerId:     userId,
		FilePath:    filePath,
		PreviewPath: previewPath,
		CreatedAt:   time.Now(),
	}
	err = uow.AttachmentRepository().Create(ctx, &attachment)
	if err != nil {
		// The record failed, so the bytes on disk are orphans.
		s.removeFiles(&attachment)
		return nil, err
	}

	return toAttachmentResponse(&attachment), nil
}

func (s *attachmentService) Update(ctx context.Context, userId uint, req *dto.UpdateAttachmentRequest) (*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachment, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	attachment.Title = req.Title
	err = uow.AttachmentRepository().Update(ctx, attachment)
	if err != nil {
		return nil, err
	}

	s.publicNotes.Flush()
	return toAttachmentResponse(attachment), nil
}

func (s *attachmentService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachment, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// Files go first. Already-missing files are fine, any other
	// storage failure keeps the record so the delete can be retried.
	if err := s.store.Remove(attachment.FilePath); err != nil {
		return apperror.Internal("remove attachment file", err)
	}
	if attachment.PreviewPath != nil {
		if err := s.store.Remove(*attachment.PreviewPath); err != nil {
			return apperror.Internal("remove attachment preview", err)
		}
	}

	err = uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	err = uow.AttachmentRepository().Delete(ctx, id)
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

func (s *attachmentService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, id uint) (*entity.Attachment, error) {
	attachment, err := uow.AttachmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, apperror.NotFound("attachment")
	}
	if attachment.OwnerId != userId {
		return nil, apperror.Forbidden("you do not own this attachment")
	}
	return attachment, nil
}

func (s *attachmentService) removeFiles(attachment *entity.Attachment) {
	if err := s.store.Remove(attachment.FilePath); err != nil {
		s.log.Warn("attachment", "remove file failed", map[string]interface{}{
			"path":  attachment.FilePath,
			"error": err.Error(),
		})
	}
	if attachment.PreviewPath != nil {
		if err := s.store.Remove(*attachment.PreviewPath); err != nil {
			s.log.Warn("attachment", "remove preview failed", map[string]interface{}{
				"path":  *attachment.PreviewPath,
				"error": err.Error(),
			})
		}
	}
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		Id:      a.Id,
		Title:   a.Title,
		File:    a.FilePath,
		Preview: a.PreviewPath,
		Owner:   a.OwnerId,
	}
}
