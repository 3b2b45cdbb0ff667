package entity

import "time"

type Note struct {
	Id      uint
	Title   string
	Content string
	ColorId *uint
	OwnerId uint

	// Link sets. These are exclusive many-to-many associations of the
	// note; the referenced rows themselves are shared.
	CategoryIds   []uint
	LabelIds      []uint
	AttachmentIds []uint
	DelegatedIds  []uint

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayTitle returns the placeholder for notes saved without a title.
func (n *Note) DisplayTitle() string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// IsDelegate reports whether userId is in the delegated editor set.
func (n *Note) IsDelegate(userId uint) bool {
	for _, id := range n.DelegatedIds {
		if id == userId {
			return true
		}
	}
	return false
}
