package core

import (
	"catcare/internal/inference"
	"catcare/internal/repository"
	"context"
	"encoding/json"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	SaveHistory(ctx context.Context, record repository.History) error
	GetUserHistory(ctx context.Context, userID uint) ([]repository.History, error)
}

//counterfeiter:generate -o fake -fake-name InferenceService . InferenceService
type InferenceService interface {
	PredictForm(ctx context.Context, data json.RawMessage) (inference.Result, error)
	PredictImage(ctx context.Context, upload inference.Upload) (inference.Result, error)
}
