package cmd

import (
	"catcare/internal/config"
	"catcare/internal/core"
	"catcare/internal/db"
	"catcare/internal/http/handler"
	"catcare/internal/http/handler/middleware"
	"catcare/internal/http/payload"
	"catcare/internal/http/server"
	"catcare/internal/inference"
	"catcare/internal/repository"
	"catcare/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("catcare", zapcore.InfoLevel)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnw("could not load .env file", "error", err)
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewCareRepository(dbConn)

	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// inference client, outbound calls are bounded by the configured timeout
	httpClient := &http.Client{Timeout: config.InferenceTimeout}
	inferenceClient := inference.NewClient(httpClient, config.InferenceURL)

	// catcare service
	catcare := core.NewCatCare(
		logger,
		repo,
		inferenceClient)

	// handler
	careHlr := handler.NewCareHandler(
		logger,
		payload.DecodeValidator{},
		catcare)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewCORSMiddleware().CORS(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, careHlr.HandleRegister)
	mux.HandleFunc(handler.Login, careHlr.HandleLogin)
	mux.HandleFunc(handler.Predict, careHlr.HandlePredict)
	mux.HandleFunc(handler.PredictImage, careHlr.HandlePredictImage)
	mux.HandleFunc(handler.History, careHlr.HandleHistory)
	mux.HandleFunc(handler.Health, careHlr.HandleHealth)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
