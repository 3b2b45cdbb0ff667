package dto

type PublicNoteListItem struct {
	Id       uint              `json:"id"`
	Title    string            `json:"title"`
	Color    *string           `json:"color"`
	Category []CategorySummary `json:"category"`
	Label    []LabelSummary    `json:"label"`
}

type PublicNoteDetail struct {
	Id       uint              `json:"id"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Color    *string           `json:"color"`
	Owner    string            `json:"owner"`
	Category []CategorySummary `json:"category"`
	Label    []LabelSummary    `json:"label"`
	File     []FileSummary     `json:"file"`
}
