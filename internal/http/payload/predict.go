package payload

import (
	"encoding/json"

	"github.com/jellydator/validation"
)

type PredictRequest struct {
	UserID uint            `json:"userId"`
	Data   json.RawMessage `json:"data"`
}

func (p PredictRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.Data, validation.Required),
	)
}
