package response

import (
	"encoding/json"

	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	TripType      string          `json:"tripType"`
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	BaseRateCents int64           `json:"baseRateCents"`
	Item          json.RawMessage `json:"item"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
