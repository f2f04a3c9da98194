package api

// CreateMealRequest 建立與更新餐點共用的請求格式。
// IsDiet 使用指標，讓 required 接受 false 但拒絕缺漏欄位。
// swagger:model api.CreateMealRequest
type CreateMealRequest struct {
	Name        string `json:"name" validate:"required" example:"Breakfast"`
	Description string `json:"description" validate:"required" example:"Oatmeal with fruit"`
	IsDiet      *bool  `json:"is_diet" validate:"required" example:"true"`
	Timestamp   string `json:"timestamp" validate:"required" example:"2023-10-25T08:00:00"`
}
