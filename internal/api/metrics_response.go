package api

// swagger:model api.MetricsResponse
type MetricsResponse struct {
	CountMeals          int `json:"countMeals" example:"4"`
	CountMealsIsDiet    int `json:"countMealsIsDiet" example:"3"`
	CountMealsIsNotDiet int `json:"countMealsIsNotDiet" example:"1"`
	BestStreak          int `json:"bestStreak" example:"2"`
}
