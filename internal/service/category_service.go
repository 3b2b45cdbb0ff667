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

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
	// List returns all categories as a forest rooted at the
	// parentless ones, nested to arbitrary depth.
	List(ctx context.Context) ([]dto.CategoryTreeNode, error)
	Show(ctx context.Context, id uint) (*dto.CategoryResponse, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
	}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.Parent != nil {
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.Parent})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.ValidationMsg("parent", "Parent category does not exist.")
		}
	}

	category := entity.Category{
		Title:     req.Title,
		ParentId:  req.Parent,
		CreatedAt: time.Now(),
	}
	err := uow.CategoryRepository().Create(ctx, &category)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Id: category.Id, Title: category.Title, Parent: category.ParentId}, nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}

	if req.Parent != nil {
		if err := s.checkNoCycle(ctx, uow, req.Id, *req.Parent); err != nil {
			return nil, err
		}
	}

	category.Title = req.Title
	category.ParentId = req.Parent
	err = uow.CategoryRepository().Update(ctx, category)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Id: category.Id, Title: category.Title, Parent: category.ParentId}, nil
}

// checkNoCycle walks up from the proposed parent and rejects the edge
// if the walk reaches the category being updated.
func (s *categoryService) checkNoCycle(ctx context.Context, uow unitofwork.UnitOfWork, id uint, parentId uint) error {
	if parentId == id {
		return apperror.ValidationMsg("parent", "A category cannot be its own parent.")
	}

	currentId := parentId
	for {
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: currentId})
		if err != nil {
			return err
		}
		if parent == nil {
			return apperror.ValidationMsg("parent", "Parent category does not exist.")
		}
		if parent.ParentId == nil {
			return nil
		}
		if *parent.ParentId == id {
			return apperror.ValidationMsg("parent", "Cannot move a category under its own descendant.")
		}
		currentId = *parent.ParentId
	}
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	err = uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	// Direct children survive as roots; deeper descendants keep
	// their parents and move up with them.
	err = uow.CategoryRepository().DetachChildren(ctx, id)
	if err != nil {
		return err
	}
	err = uow.CategoryRepository().Delete(ctx, id)
	if err != nil {
		return err
	}

	return uow.Commit()
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryTreeNode, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	return buildCategoryTree(categories), nil
}

func (s *categoryService) Show(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}

	return &dto.CategoryResponse{Id: category.Id, Title: category.Title, Parent: category.ParentId}, nil
}

// buildCategoryTree nests a flat id-ordered category list into a
// forest. A child whose parent row is missing is promoted to root so
// nothing silently disappears from the listing.
func buildCategoryTree(categories []*entity.Category) []dto.CategoryTreeNode {
	children := make(map[uint][]*entity.Category)
	byId := make(map[uint]*entity.Category, len(categories))
	for _, c := range categories {
		byId[c.Id] = c
	}

	var roots []*entity.Category
	for _, c := range categories {
		if c.ParentId == nil {
			roots = append(roots, c)
			continue
		}
		if _, ok := byId[*c.ParentId]; !ok {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentId] = append(children[*c.ParentId], c)
	}

	var build func(c *entity.Category) dto.CategoryTreeNode
	build = func(c *entity.Category) dto.CategoryTreeNode {
		node := dto.CategoryTreeNode{
			Id:            c.Id,
			Title:         c.Title,
			Parent:        c.ParentId,
			SubCategories: []dto.CategoryTreeNode{},
		}
		for _, child := range children[c.Id] {
			node.SubCategories = append(node.SubCategories, build(child))
		}
		return node
	}

	result := make([]dto.CategoryTreeNode, 0, len(roots))
	for _, root := range roots {
		result = append(result, build(root))
	}
	return result
}
