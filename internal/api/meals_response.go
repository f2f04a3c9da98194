package api

import "daily-diet/internal/model"

// swagger:model api.MealsResponse
type MealsResponse struct {
	Meals []model.Meal `json:"meals"`
}
