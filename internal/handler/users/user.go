package users

import (
	"net/http"

	"daily-diet/internal/api"
	"daily-diet/internal/database"
	"daily-diet/internal/middleware"
	"daily-diet/internal/model"
	"daily-diet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// cookie 有效期限：7 天
const sessionCookieMaxAge = 7 * 24 * 60 * 60

var (
	listUsers  = store.ListUsers
	createUser = store.CreateUser
)

// @Summary     List users
// @Description 回傳所有使用者，不分頁、不需授權
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UsersResponse{Users: users})
	}
}

// @Summary     Create a new user
// @Description 建立新帳號並以 sessionId cookie 回傳識別碼（7 天效期）
// @Tags        users
// @Accept      json
// @Param       body body api.CreateUserRequest true "使用者資料"
// @Success     201 "Created"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user := &model.User{
			ID:       uuid.New(),
			Email:    req.Email,
			Password: req.Password,
		}
		if err := createUser(c.Request().Context(), db, user); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		c.SetCookie(&http.Cookie{
			Name:   middleware.SessionCookieName,
			Value:  user.ID.String(),
			Path:   "/",
			MaxAge: sessionCookieMaxAge,
		})
		return c.NoContent(http.StatusCreated)
	}
}
