package meals

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-diet/internal/database"
	"daily-diet/internal/middleware"
	"daily-diet/internal/model"
	"daily-diet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

// newSessionCtx 模擬通過 RequireSession 後的 context；sid 為空表示未帶 cookie
func newSessionCtx(e *echo.Echo, method, body, sid string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/meals", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sid != "" {
		c.Set(middleware.ContextSessionKey, sid)
	}
	return c, rec
}

func newParamCtx(e *echo.Echo, method, body, sid, id string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newSessionCtx(e, method, body, sid)
	c.SetPath("/meals/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func restore() {
	listMeals = store.ListMeals
	listMealsByTimestamp = store.ListMealsByTimestamp
	getMeal = store.GetMeal
	createMeal = store.CreateMeal
	updateMeal = store.UpdateMeal
	deleteMeal = store.DeleteMeal
}

const mealBody = `{"name":"Breakfast","description":"Oatmeal","is_diet":true,"timestamp":"2023-10-25T08:00:00"}`

func TestListMealsHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newSessionCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListMealsHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "missing sessionId cookie")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listMeals = func(_ context.Context, _ database.DB, _ string) ([]model.Meal, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newSessionCtx(e, http.MethodGet, "", sid)
		require.NoError(t, ListMealsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success scoped to session", func(t *testing.T) {
		t.Cleanup(restore)
		var gotSID string
		listMeals = func(_ context.Context, _ database.DB, s string) ([]model.Meal, error) {
			gotSID = s
			return []model.Meal{{ID: uuid.New(), SessionID: s, Name: "Breakfast"}}, nil
		}
		ctx, rec := newSessionCtx(e, http.MethodGet, "", sid)
		require.NoError(t, ListMealsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, sid, gotSID)
		require.Contains(t, rec.Body.String(), "\"meals\"")
		require.Contains(t, rec.Body.String(), "Breakfast")
	})
}

func TestMetricsHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newSessionCtx(e, http.MethodGet, "", "")
		require.NoError(t, MetricsHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listMealsByTimestamp = func(_ context.Context, _ database.DB, _ string) ([]model.Meal, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newSessionCtx(e, http.MethodGet, "", sid)
		require.NoError(t, MetricsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty set yields zero metrics", func(t *testing.T) {
		t.Cleanup(restore)
		listMealsByTimestamp = func(_ context.Context, _ database.DB, _ string) ([]model.Meal, error) {
			return []model.Meal{}, nil
		}
		ctx, rec := newSessionCtx(e, http.MethodGet, "", sid)
		require.NoError(t, MetricsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"countMeals\":0")
		require.Contains(t, rec.Body.String(), "\"bestStreak\":0")
	})

	t.Run("streak over ordered meals", func(t *testing.T) {
		t.Cleanup(restore)
		var gotSID string
		listMealsByTimestamp = func(_ context.Context, _ database.DB, s string) ([]model.Meal, error) {
			gotSID = s
			return []model.Meal{
				{IsDiet: true}, {IsDiet: true}, {IsDiet: false}, {IsDiet: true},
			}, nil
		}
		ctx, rec := newSessionCtx(e, http.MethodGet, "", sid)
		require.NoError(t, MetricsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, sid, gotSID)
		require.Contains(t, rec.Body.String(), "\"countMeals\":4")
		require.Contains(t, rec.Body.String(), "\"countMealsIsDiet\":3")
		require.Contains(t, rec.Body.String(), "\"countMealsIsNotDiet\":1")
		require.Contains(t, rec.Body.String(), "\"bestStreak\":2")
	})
}

func TestGetMealHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()
	mealID := uuid.New()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodGet, "", "", mealID.String())
		require.NoError(t, GetMealHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodGet, "", sid, "not-a-uuid")
		require.NoError(t, GetMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid meal ID")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		getMeal = func(_ context.Context, _ database.DB, _ string, _ uuid.UUID) (*model.Meal, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "", sid, mealID.String())
		require.NoError(t, GetMealHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("miss returns null meal, not an error", func(t *testing.T) {
		t.Cleanup(restore)
		getMeal = func(_ context.Context, _ database.DB, _ string, _ uuid.UUID) (*model.Meal, error) {
			return nil, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "", sid, mealID.String())
		require.NoError(t, GetMealHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"meal\":null")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getMeal = func(_ context.Context, _ database.DB, s string, id uuid.UUID) (*model.Meal, error) {
			require.Equal(t, sid, s)
			require.Equal(t, mealID, id)
			return &model.Meal{ID: id, SessionID: s, Name: "Breakfast"}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "", sid, mealID.String())
		require.NoError(t, GetMealHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Breakfast")
	})
}

func TestCreateMealHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newSessionCtx(e, http.MethodPost, mealBody, "")
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newSessionCtx(e, http.MethodPost, "{", sid)
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newSessionCtx(e, http.MethodPost, `{"name":"Breakfast"}`, sid)
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createMeal = func(_ context.Context, _ database.DB, _ *model.Meal) error {
			return errors.New("c")
		}
		ctx, rec := newSessionCtx(e, http.MethodPost, mealBody, sid)
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var created *model.Meal
		createMeal = func(_ context.Context, _ database.DB, m *model.Meal) error {
			created = m
			return nil
		}
		ctx, rec := newSessionCtx(e, http.MethodPost, mealBody, sid)
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Empty(t, rec.Body.String())
		require.NotNil(t, created)
		require.Equal(t, sid, created.SessionID)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, "Breakfast", created.Name)
		require.True(t, created.IsDiet)
		require.Equal(t, "2023-10-25T08:00:00", created.Timestamp)
	})

	t.Run("is_diet false is accepted", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var created *model.Meal
		createMeal = func(_ context.Context, _ database.DB, m *model.Meal) error {
			created = m
			return nil
		}
		body := `{"name":"Lunch","description":"Burger","is_diet":false,"timestamp":"2023-10-25T12:00:00"}`
		ctx, rec := newSessionCtx(e, http.MethodPost, body, sid)
		require.NoError(t, CreateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		require.False(t, created.IsDiet)
	})
}

func TestUpdateMealHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()
	mealID := uuid.New()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodPut, mealBody, "", mealID.String())
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodPut, mealBody, sid, "42")
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newParamCtx(e, http.MethodPut, "{", sid, mealID.String())
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newParamCtx(e, http.MethodPut, `{"name":"x"}`, sid, mealID.String())
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateMeal = func(_ context.Context, _ database.DB, _ *model.Meal) error {
			return errors.New("u")
		}
		ctx, rec := newParamCtx(e, http.MethodPut, mealBody, sid, mealID.String())
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	// 查無資料（含他人 session 的 id）時 store 是 no-op，但仍回 202
	t.Run("no-op still accepted", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var updated *model.Meal
		updateMeal = func(_ context.Context, _ database.DB, m *model.Meal) error {
			updated = m
			return nil
		}
		ctx, rec := newParamCtx(e, http.MethodPut, mealBody, sid, mealID.String())
		require.NoError(t, UpdateMealHandler(nil)(ctx))
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.Empty(t, rec.Body.String())
		require.NotNil(t, updated)
		require.Equal(t, mealID, updated.ID)
		require.Equal(t, sid, updated.SessionID)
		require.Equal(t, "Breakfast", updated.Name)
	})
}

func TestDeleteMealHandler(t *testing.T) {
	e := echo.New()
	sid := uuid.NewString()
	mealID := uuid.New()

	t.Run("missing session", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodDelete, "", "", mealID.String())
		require.NoError(t, DeleteMealHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodDelete, "", sid, "nope")
		require.NoError(t, DeleteMealHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteMeal = func(_ context.Context, _ database.DB, _ string, _ uuid.UUID) error {
			return errors.New("d")
		}
		ctx, rec := newParamCtx(e, http.MethodDelete, "", sid, mealID.String())
		require.NoError(t, DeleteMealHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Cleanup(restore)
		calls := 0
		deleteMeal = func(_ context.Context, _ database.DB, s string, id uuid.UUID) error {
			calls++
			require.Equal(t, sid, s)
			require.Equal(t, mealID, id)
			return nil
		}
		for i := 0; i < 2; i++ {
			ctx, rec := newParamCtx(e, http.MethodDelete, "", sid, mealID.String())
			require.NoError(t, DeleteMealHandler(nil)(ctx))
			require.Equal(t, http.StatusAccepted, rec.Code)
			require.Empty(t, rec.Body.String())
		}
		require.Equal(t, 2, calls)
	})
}
