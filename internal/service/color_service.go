package service

import (
	"context"

	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/repository/specification"
	"github.com/tavor118/notes/internal/repository/unitofwork"
)

type IColorService interface {
	Create(ctx context.Context, req *dto.CreateColorRequest) (*dto.ColorResponse, error)
	Update(ctx context.Context, req *dto.UpdateColorRequest) (*dto.ColorResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*dto.ColorResponse, error)
	Show(ctx context.Context, id uint) (*dto.ColorResponse, error)
}

type colorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewColorService(uowFactory unitofwork.RepositoryFactory) IColorService {
	return &colorService{
		uowFactory: uowFactory,
	}
}

func (s *colorService) Create(ctx context.Context, req *dto.CreateColorRequest) (*dto.ColorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color := entity.Color{Color: req.Color}
	err := uow.ColorRepository().Create(ctx, &color)
	if err != nil {
		return nil, err
	}

	return &dto.ColorResponse{Id: color.Id, Color: color.Color}, nil
}

func (s *colorService) Update(ctx context.Context, req *dto.UpdateColorRequest) (*dto.ColorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, apperror.NotFound("color")
	}

	color.Color = req.Color
	err = uow.ColorRepository().Update(ctx, color)
	if err != nil {
		return nil, err
	}

	return &dto.ColorResponse{Id: color.Id, Color: color.Color}, nil
}

func (s *colorService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if color == nil {
		return apperror.NotFound("color")
	}

	err = uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	err = uow.ColorRepository().Delete(ctx, id)
	if err != nil {
		return err
	}

	return uow.Commit()
}

func (s *colorService) List(ctx context.Context) ([]*dto.ColorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	colors, err := uow.ColorRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ColorResponse, 0, len(colors))
	for _, color := range colors {
		result = append(result, &dto.ColorResponse{Id: color.Id, Color: color.Color})
	}
	return result, nil
}

func (s *colorService) Show(ctx context.Context, id uint) (*dto.ColorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color, err := uow.ColorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, apperror.NotFound("color")
	}

	return &dto.ColorResponse{Id: color.Id, Color: color.Color}, nil
}
