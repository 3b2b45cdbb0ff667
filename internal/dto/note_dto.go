package dto

type CreateNoteRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Content   string  `json:"content" validate:"required"`
	Color     *uint   `json:"color"`
	Category  []uint  `json:"category"`
	Label     []uint  `json:"label"`
	File      []uint  `json:"file"`
	Delegated []uint  `json:"delegated"`
}

// UpdateNoteRequest replaces the whole note. Fields left out of the
// body fall back to their zero values, so an update without a title
// clears the previous title.
type UpdateNoteRequest struct {
	Id        uint
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Content   string  `json:"content" validate:"required"`
	Color     *uint   `json:"color"`
	Category  []uint  `json:"category"`
	Label     []uint  `json:"label"`
	File      []uint  `json:"file"`
	Delegated []uint  `json:"delegated"`
}

type NoteListItem struct {
	Id        uint              `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Color     *ColorResponse    `json:"color"`
	Owner     UserSummary       `json:"owner"`
	Category  []CategorySummary `json:"category"`
	Label     []LabelSummary    `json:"label"`
	File      []FileSummary     `json:"file"`
	Delegated []UserSummary     `json:"delegated"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// NoteDetailResponse carries the note plus the catalogs an edit form
// needs: every label, the caller's files, and every other user that
// could be delegated to.
type NoteDetailResponse struct {
	Note   NoteListItem   `json:"note"`
	Labels []LabelSummary `json:"labels"`
	Files  []FileSummary  `json:"files"`
	Users  []UserSummary  `json:"users"`
}

type FileSummary struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
	File  string `json:"file"`
}
