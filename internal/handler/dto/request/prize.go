package request

type CreatePrizeRequest struct {
	Name           string `json:"name" binding:"required"`
	PointsRequired int    `json:"points_required" binding:"required,min=1"`
	Description    string `json:"description"`
}
