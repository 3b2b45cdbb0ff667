package dto

type AttachmentResponse struct {
	Id      uint    `json:"id"`
	Title   string  `json:"title"`
	File    string  `json:"file"`
	Preview *string `json:"preview"`
	Owner   uint    `json:"owner"`
}

type UpdateAttachmentRequest struct {
	Id    uint
	Title string `json:"title" validate:"required,max=200"`
}
