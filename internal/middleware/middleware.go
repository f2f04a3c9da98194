package middleware

import (
	"net/http"

	"daily-diet/internal/api"

	"github.com/labstack/echo/v4"
)

// SessionCookieName 儲存 session 識別碼的 cookie 名稱
const SessionCookieName = "sessionId"

// ContextSessionKey RequireSession 寫入 echo.Context 的 key
const ContextSessionKey = "sessionId"

// RequireSession 僅檢查 sessionId cookie 是否存在，不驗證其值
// 是否對應真實使用者（已知的設計弱點，見 README）。
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing sessionId cookie"})
		}
		c.Set(ContextSessionKey, cookie.Value)
		return next(c)
	}
}

// SessionID 取出 RequireSession 寫入的 session 識別碼
func SessionID(c echo.Context) (string, bool) {
	sid, ok := c.Get(ContextSessionKey).(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
