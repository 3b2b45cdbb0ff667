package dto

type LabelSummary struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
}

type CreateLabelRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

type UpdateLabelRequest struct {
	Id    uint
	Title string `json:"title" validate:"required,max=200"`
}

type CategorySummary struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
}

type CreateCategoryRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Parent *uint  `json:"parent"`
}

type UpdateCategoryRequest struct {
	Id     uint
	Title  string `json:"title" validate:"required,max=200"`
	Parent *uint  `json:"parent"`
}

type CategoryResponse struct {
	Id     uint   `json:"id"`
	Title  string `json:"title"`
	Parent *uint  `json:"parent"`
}

// CategoryTreeNode is the recursive shape of the category list: every
// node repeats the same shape in sub_categories, unbounded depth.
type CategoryTreeNode struct {
	Id            uint               `json:"id"`
	Title         string             `json:"title"`
	Parent        *uint              `json:"parent"`
	SubCategories []CategoryTreeNode `json:"sub_categories"`
}

type CreateColorRequest struct {
	Color string `json:"color" validate:"required,len=7"`
}

type UpdateColorRequest struct {
	Id    uint
	Color string `json:"color" validate:"required,len=7"`
}

type ColorResponse struct {
	Id    uint   `json:"id"`
	Color string `json:"color"`
}
