package api

import "daily-diet/internal/model"

// MealResponse 查無資料時 Meal 為 null
// swagger:model api.MealResponse
type MealResponse struct {
	Meal *model.Meal `json:"meal"`
}
