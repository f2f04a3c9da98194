// File: internal/model/meal.go
package model

import "github.com/google/uuid"

// Meal 一筆餐點紀錄，session_id 決定資料歸屬
type Meal struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsDiet      bool      `db:"is_diet" json:"is_diet"`
	Timestamp   string    `db:"timestamp" json:"timestamp"`
}
