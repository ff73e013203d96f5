package core

import (
	"catcare/internal/inference"
	"catcare/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrDuplicateEmail error = errors.New("email already registered")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrMissingInput error = errors.New("missing file or user id")
var ErrPredictionTimeout error = errors.New("prediction timed out")

const bcryptCost = 10

// CatCare is the request pipeline: it authenticates users against the store
// and forwards prediction requests to the inference service, appending one
// history record per successful round-trip.
type CatCare struct {
	logs      *zap.SugaredLogger
	repo      Repository
	inference InferenceService
}

func NewCatCare(logger *zap.SugaredLogger, repo Repository, inferenceService InferenceService) *CatCare {
	return &CatCare{
		logs:      logger,
		repo:      repo,
		inference: inferenceService,
	}
}

// Register hashes the password and inserts the user. A unique-index violation
// on the email column is the duplicate signal, there is no pre-insert lookup.
func (c *CatCare) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := c.repo.CreateUser(ctx, repository.User{
		Name:     msg.Name,
		Email:    msg.Email,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return UserRecord{}, ErrDuplicateEmail
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	c.logs.Infow("user registered", "userId", user.ID, "email", user.Email)

	return UserRecord{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// Login verifies the password against the stored hash. An unknown email and a
// wrong password are indistinguishable to the caller.
func (c *CatCare) Login(ctx context.Context, msg LoginMessage) (UserRecord, error) {
	user, err := c.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return UserRecord{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// PredictForm forwards the form data to the inference endpoint and records the
// round-trip. The history insert must confirm before success is reported.
func (c *CatCare) PredictForm(ctx context.Context, userID uint, data json.RawMessage) (Prediction, error) {
	result, err := c.inference.PredictForm(ctx, data)
	if err != nil {
		return Prediction{}, c.translatePredictErr(err)
	}

	record := repository.History{
		UserID: userID,
		Method: repository.MethodForm,
		Input:  string(data),
		Result: result.Prediction,
	}
	if err := c.repo.SaveHistory(ctx, record); err != nil {
		return Prediction{}, fmt.Errorf("save history: %w", err)
	}

	c.logs.Infow("prediction recorded",
		"userId", userID,
		"method", repository.MethodForm,
		"result", result.Prediction)

	return Prediction{Body: result.Body}, nil
}

// PredictImage forwards the uploaded file to the inference endpoint. Only the
// filename is persisted, never the image bytes.
func (c *CatCare) PredictImage(ctx context.Context, userID uint, upload ImageUpload) (Prediction, error) {
	if userID == 0 || len(upload.Content) == 0 {
		return Prediction{}, ErrMissingInput
	}

	result, err := c.inference.PredictImage(ctx, inference.Upload{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Content:     upload.Content,
	})
	if err != nil {
		return Prediction{}, c.translatePredictErr(err)
	}

	input, err := json.Marshal(map[string]string{"filename": upload.Filename})
	if err != nil {
		return Prediction{}, fmt.Errorf("marshal history input: %w", err)
	}

	record := repository.History{
		UserID: userID,
		Method: repository.MethodImage,
		Input:  string(input),
		Result: result.Prediction,
	}
	if err := c.repo.SaveHistory(ctx, record); err != nil {
		return Prediction{}, fmt.Errorf("save history: %w", err)
	}

	c.logs.Infow("prediction recorded",
		"userId", userID,
		"method", repository.MethodImage,
		"result", result.Prediction)

	return Prediction{Body: result.Body}, nil
}

func (c *CatCare) UserHistory(ctx context.Context, userID uint) ([]HistoryEntry, error) {
	records, err := c.repo.GetUserHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}

	entries := make([]HistoryEntry, len(records))
	for i, rec := range records {
		entries[i] = HistoryEntry{
			ID:     rec.ID,
			UserID: rec.UserID,
			Method: rec.Method,
			Input:  rec.Input,
			Result: rec.Result,
		}
	}

	return entries, nil
}

func (c *CatCare) translatePredictErr(err error) error {
	if errors.Is(err, inference.ErrTimeout) {
		return fmt.Errorf("%w: %s", ErrPredictionTimeout, err)
	}
	return fmt.Errorf("predict: %w", err)
}
