package service

import "daily-diet/internal/model"

// Metrics 單一 session 的餐點統計
type Metrics struct {
	CountMeals          int
	CountMealsIsDiet    int
	CountMealsIsNotDiet int
	BestStreak          int
}

// ComputeMetrics 計算餐點統計。meals 必須已依 timestamp 升冪排序，
// BestStreak 為連續 is_diet 餐點的最長長度，遇到非 is_diet 即歸零。
func ComputeMetrics(meals []model.Meal) Metrics {
	var m Metrics
	m.CountMeals = len(meals)

	streak := 0
	for _, meal := range meals {
		if meal.IsDiet {
			m.CountMealsIsDiet++
			streak++
		} else {
			streak = 0
		}
		if streak > m.BestStreak {
			m.BestStreak = streak
		}
	}
	m.CountMealsIsNotDiet = m.CountMeals - m.CountMealsIsDiet
	return m
}
