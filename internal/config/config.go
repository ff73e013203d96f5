package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey          = "API_PORT"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	inferenceURLEnvKey     = "INFERENCE_API_URL"
	inferenceTimeoutEnvKey = "INFERENCE_TIMEOUT"
)

const defaultInferenceTimeout = 10 * time.Second

type App struct {
	Port             string
	DBConnectionURL  string
	InferenceURL     string
	InferenceTimeout time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	inferenceURL, ok := os.LookupEnv(inferenceURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, inferenceURLEnvKey)
	}

	timeout := defaultInferenceTimeout
	if raw, ok := os.LookupEnv(inferenceTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", inferenceTimeoutEnvKey, raw)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:             port,
		DBConnectionURL:  dbConn,
		InferenceURL:     inferenceURL,
		InferenceTimeout: timeout,
	}, nil
}
