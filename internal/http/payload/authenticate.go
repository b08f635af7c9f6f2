package payload

import (
	"custodian/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		// bcrypt ignores everything past 72 bytes
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
	}
}

type APIKeyRequest struct {
	Label string `json:"label"`
}

func (a APIKeyRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Label, validation.Length(0, 255)),
	)
}
