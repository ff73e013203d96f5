package payload

import (
	"catcare/internal/core"

	"github.com/jellydator/validation"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    l.Email,
		Password: l.Password,
	}
}
