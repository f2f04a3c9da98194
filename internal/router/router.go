// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"daily-diet/internal/database"
	"daily-diet/internal/handler"
	"daily-diet/internal/handler/meals"
	"daily-diet/internal/handler/users"
	"daily-diet/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB) {
	// 健康檢查
	e.GET("/ping", handler.PingHandler(db))

	// 使用者註冊與列表（不需授權）
	e.GET("/users", users.ListUsersHandler(db))
	e.POST("/users", users.CreateUserHandler(db))

	// 餐點 CRUD，全部以 sessionId cookie 界定資料範圍
	apiMeals := e.Group("/meals", middleware.RequireSession)
	apiMeals.GET("", meals.ListMealsHandler(db))
	apiMeals.GET("/metrics", meals.MetricsHandler(db))
	apiMeals.GET("/:id", meals.GetMealHandler(db))
	apiMeals.POST("", meals.CreateMealHandler(db))
	apiMeals.PUT("/:id", meals.UpdateMealHandler(db))
	apiMeals.DELETE("/:id", meals.DeleteMealHandler(db))
}
