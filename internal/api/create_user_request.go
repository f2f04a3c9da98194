package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
