package api

import "daily-diet/internal/model"

// swagger:model api.UsersResponse
type UsersResponse struct {
	Users []model.User `json:"users"`
}
