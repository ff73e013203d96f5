package handler

import (
	"catcare/internal/core"
	"context"
	"encoding/json"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CareService . CareService
type CareService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.UserRecord, error)
	PredictForm(ctx context.Context, userID uint, data json.RawMessage) (core.Prediction, error)
	PredictImage(ctx context.Context, userID uint, upload core.ImageUpload) (core.Prediction, error)
	UserHistory(ctx context.Context, userID uint) ([]core.HistoryEntry, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
