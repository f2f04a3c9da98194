package store

import (
	"context"
	"fmt"

	"daily-diet/internal/database"
	"daily-diet/internal/model"
)

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, email, password FROM users`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password)
		 VALUES ($1, $2, $3)`,
		u.ID,
		u.Email,
		u.Password,
	)
	if err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}
