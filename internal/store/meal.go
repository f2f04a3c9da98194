package store

import (
	"context"
	"errors"
	"fmt"

	"daily-diet/internal/database"
	"daily-diet/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func scanMeals(rows pgx.Rows) ([]model.Meal, error) {
	defer rows.Close()

	meals := []model.Meal{}
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.Name,
			&m.Description,
			&m.IsDiet,
			&m.Timestamp,
		); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}

func ListMeals(ctx context.Context, db database.DB, sessionID string) ([]model.Meal, error) {
	rows, err := db.Query(ctx,
		`SELECT id, session_id, name, description, is_diet, "timestamp"
		 FROM meals WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListMeals: %w", err)
	}
	meals, err := scanMeals(rows)
	if err != nil {
		return nil, fmt.Errorf("ListMeals: %w", err)
	}
	return meals, nil
}

// ListMealsByTimestamp 依 timestamp 字串升冪排序（字典序）
func ListMealsByTimestamp(ctx context.Context, db database.DB, sessionID string) ([]model.Meal, error) {
	rows, err := db.Query(ctx,
		`SELECT id, session_id, name, description, is_diet, "timestamp"
		 FROM meals WHERE session_id = $1
		 ORDER BY "timestamp" ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListMealsByTimestamp: %w", err)
	}
	meals, err := scanMeals(rows)
	if err != nil {
		return nil, fmt.Errorf("ListMealsByTimestamp: %w", err)
	}
	return meals, nil
}

// GetMeal 查無資料時回傳 (nil, nil)，不視為錯誤
func GetMeal(ctx context.Context, db database.DB, sessionID string, mealID uuid.UUID) (*model.Meal, error) {
	row := db.QueryRow(ctx,
		`SELECT id, session_id, name, description, is_diet, "timestamp"
		 FROM meals WHERE id = $1 AND session_id = $2`,
		mealID,
		sessionID,
	)
	m := &model.Meal{}
	if err := row.Scan(
		&m.ID,
		&m.SessionID,
		&m.Name,
		&m.Description,
		&m.IsDiet,
		&m.Timestamp,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetMeal: %w", err)
	}
	return m, nil
}

func CreateMeal(ctx context.Context, db database.DB, m *model.Meal) error {
	_, err := db.Exec(ctx,
		`INSERT INTO meals (id, session_id, name, description, is_diet, "timestamp")
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID,
		m.SessionID,
		m.Name,
		m.Description,
		m.IsDiet,
		m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("CreateMeal: %w", err)
	}
	return nil
}

// UpdateMeal 不檢查影響筆數，查無資料時為靜默 no-op
func UpdateMeal(ctx context.Context, db database.DB, m *model.Meal) error {
	_, err := db.Exec(ctx,
		`UPDATE meals
		 SET name = $1, description = $2, is_diet = $3, "timestamp" = $4
		 WHERE id = $5 AND session_id = $6`,
		m.Name,
		m.Description,
		m.IsDiet,
		m.Timestamp,
		m.ID,
		m.SessionID,
	)
	if err != nil {
		return fmt.Errorf("UpdateMeal: %w", err)
	}
	return nil
}

// DeleteMeal 不檢查影響筆數，查無資料時為靜默 no-op
func DeleteMeal(ctx context.Context, db database.DB, sessionID string, mealID uuid.UUID) error {
	_, err := db.Exec(ctx,
		`DELETE FROM meals WHERE id = $1 AND session_id = $2`,
		mealID,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("DeleteMeal: %w", err)
	}
	return nil
}
