package dto

type UserSummary struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

type UserResponse struct {
	Id        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
