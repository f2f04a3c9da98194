package meals

import (
	"net/http"

	"daily-diet/internal/api"
	"daily-diet/internal/database"
	"daily-diet/internal/middleware"
	"daily-diet/internal/model"
	"daily-diet/internal/service"
	"daily-diet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	listMeals            = store.ListMeals
	listMealsByTimestamp = store.ListMealsByTimestamp
	getMeal              = store.GetMeal
	createMeal           = store.CreateMeal
	updateMeal           = store.UpdateMeal
	deleteMeal           = store.DeleteMeal
)

// @Summary     List meals
// @Description 回傳目前 session 的所有餐點，不排序
// @Tags        meals
// @Produce     json
// @Success     200 {object} api.MealsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals [get]
func ListMealsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		ms, err := listMeals(c.Request().Context(), db, sid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MealsResponse{Meals: ms})
	}
}

// @Summary     Meal metrics
// @Description 依 timestamp 升冪計算餐點統計與最佳飲食連勝
// @Tags        meals
// @Produce     json
// @Success     200 {object} api.MetricsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals/metrics [get]
func MetricsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		ms, err := listMealsByTimestamp(c.Request().Context(), db, sid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		m := service.ComputeMetrics(ms)
		return c.JSON(http.StatusOK, api.MetricsResponse{
			CountMeals:          m.CountMeals,
			CountMealsIsDiet:    m.CountMealsIsDiet,
			CountMealsIsNotDiet: m.CountMealsIsNotDiet,
			BestStreak:          m.BestStreak,
		})
	}
}

// @Summary     Get a meal by ID
// @Description 查詢單筆餐點；查無資料時 meal 為 null，不回傳錯誤
// @Tags        meals
// @Produce     json
// @Param       id path string true "餐點 ID (UUID)"
// @Success     200 {object} api.MealResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals/{id} [get]
func GetMealHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid meal ID"})
		}
		m, err := getMeal(c.Request().Context(), db, sid, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MealResponse{Meal: m})
	}
}

// @Summary     Create a meal
// @Description 建立餐點並綁定目前 session
// @Tags        meals
// @Accept      json
// @Param       body body api.CreateMealRequest true "餐點資料"
// @Success     201 "Created"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals [post]
func CreateMealHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		var req api.CreateMealRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := createMeal(c.Request().Context(), db, &model.Meal{
			ID:          uuid.New(),
			SessionID:   sid,
			Name:        req.Name,
			Description: req.Description,
			IsDiet:      *req.IsDiet,
			Timestamp:   req.Timestamp,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusCreated)
	}
}

// @Summary     Update a meal by ID
// @Description 更新餐點欄位；查無資料時為 no-op，仍回傳 202
// @Tags        meals
// @Accept      json
// @Param       id   path string                true "餐點 ID (UUID)"
// @Param       body body api.CreateMealRequest true "餐點資料"
// @Success     202 "Accepted"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals/{id} [put]
func UpdateMealHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid meal ID"})
		}
		var req api.CreateMealRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateMeal(c.Request().Context(), db, &model.Meal{
			ID:          id,
			SessionID:   sid,
			Name:        req.Name,
			Description: req.Description,
			IsDiet:      *req.IsDiet,
			Timestamp:   req.Timestamp,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusAccepted)
	}
}

// @Summary     Delete a meal by ID
// @Description 刪除餐點；查無資料時為 no-op，仍回傳 202
// @Tags        meals
// @Param       id path string true "餐點 ID (UUID)"
// @Success     202 "Accepted"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /meals/{id} [delete]
func DeleteMealHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid, ok := middleware.SessionID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid meal ID"})
		}
		if err := deleteMeal(c.Request().Context(), db, sid, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusAccepted)
	}
}
