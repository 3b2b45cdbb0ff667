package service

import (
	"context"
	"time"

	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/repository/specification"
	"github.com/tavor118/notes/internal/repository/unitofwork"
)

type ILabelService interface {
	Create(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelSummary, error)
	Update(ctx context.Context, req *dto.UpdateLabelRequest) (*dto.LabelSummary, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*dto.LabelSummary, error)
	Show(ctx context.Context, id uint) (*dto.LabelSummary, error)
}

type labelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLabelService(uowFactory unitofwork.RepositoryFactory) ILabelService {
	return &labelService{
		uowFactory: uowFactory,
	}
}

func (s *labelService) Create(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label := entity.Label{
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	err := uow.LabelRepository().Create(ctx, &label)
	if err != nil {
		return nil, err
	}

	return &dto.LabelSummary{Id: label.Id, Title: label.Title}, nil
}

func (s *labelService) Update(ctx context.Context, req *dto.UpdateLabelRequest) (*dto.LabelSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("label")
	}

	label.Title = req.Title
	err = uow.LabelRepository().Update(ctx, label)
	if err != nil {
		return nil, err
	}

	return &dto.LabelSummary{Id: label.Id, Title: label.Title}, nil
}

func (s *labelService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if label == nil {
		return apperror.NotFound("label")
	}

	err = uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	err = uow.LabelRepository().Delete(ctx, id)
	if err != nil {
		return err
	}

	return uow.Commit()
}

func (s *labelService) List(ctx context.Context) ([]*dto.LabelSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	labels, err := uow.LabelRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LabelSummary, 0, len(labels))
	for _, label := range labels {
		result = append(result, &dto.LabelSummary{Id: label.Id, Title: label.Title})
	}
	return result, nil
}

func (s *labelService) Show(ctx context.Context, id uint) (*dto.LabelSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("label")
	}

	return &dto.LabelSummary{Id: label.Id, Title: label.Title}, nil
}
