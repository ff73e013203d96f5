package handler

import (
	"catcare/internal/core"
	"catcare/internal/http/handler/middleware"
	"catcare/internal/http/payload"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register     = "POST /register"
	Login        = "POST /login"
	Predict      = "POST /predict"
	PredictImage = "POST /predict-image"
	History      = "GET /history"
	Health       = "GET /health"
)

type CareHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	care             CareService
}

func NewCareHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, careService CareService) *CareHandler {
	return &CareHandler{
		logs:             logger,
		requestValidator: requestValidator,
		care:             careService,
	}
}

func (h *CareHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, ErrorResponse{Error: "invalid request payload"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.care.Register(r.Context(), pl.ToMessage())
	if err != nil {
		resp := ErrorResponse{Error: msgRegistrationFailed}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrDuplicateEmail) {
			resp.Error = msgDuplicateEmail
			httpCode = http.StatusBadRequest
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *CareHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, ErrorResponse{Error: "invalid request payload"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.care.Login(r.Context(), pl.ToMessage())
	if err != nil {
		resp := ErrorResponse{Error: msgLoginFailed}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			resp.Error = msgInvalidCredentials
			httpCode = http.StatusUnauthorized
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *CareHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.PredictRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, ErrorResponse{Error: "invalid request payload"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Predict,
			"request_id", requestId)
		return
	}

	h.logs.Infow("prediction request received",
		"userId", pl.UserID,
		"handler", Predict,
		"request_id", requestId)

	prediction, err := h.care.PredictForm(r.Context(), pl.UserID, pl.Data)
	if err != nil {
		h.respondPredictErr(w, err, msgPredictionFailed, Predict, requestId)
		return
	}

	h.respondRaw(w, prediction.Body, requestId)
}

// maxUploadBytes bounds the multipart body of an image prediction request.
const maxUploadBytes = 5 << 20

func (h *CareHandler) HandlePredictImage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	userIdValue := r.FormValue("userId")
	if err != nil || userIdValue == "" {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respond(w, ErrorResponse{Error: msgUploadTooLarge}, http.StatusRequestEntityTooLarge, requestId)
			h.logs.Errorw("uploaded file exceeds the size limit",
				"error", err,
				"limit", maxErr.Limit,
				"handler", PredictImage,
				"request_id", requestId)
			return
		}

		h.respond(w, ErrorResponse{Error: msgMissingFileOrUser}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing file or userId in multipart form",
			"error", err,
			"handler", PredictImage,
			"request_id", requestId)
		return
	}
	defer file.Close()

	userId, err := strconv.ParseUint(userIdValue, 10, 32)
	if err != nil {
		h.respond(w, ErrorResponse{Error: msgMissingFileOrUser}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid userId in multipart form",
			"error", err,
			"handler", PredictImage,
			"request_id", requestId)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.respond(w, ErrorResponse{Error: msgImagePredictFailed}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to read uploaded file",
			"error", err,
			"handler", PredictImage,
			"request_id", requestId)
		return
	}

	h.logs.Infow("image prediction request received",
		"userId", userId,
		"filename", header.Filename,
		"size", len(content),
		"handler", PredictImage,
		"request_id", requestId)

	upload := core.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}

	prediction, err := h.care.PredictImage(r.Context(), uint(userId), upload)
	if err != nil {
		if errors.Is(err, core.ErrMissingInput) {
			h.respond(w, ErrorResponse{Error: msgMissingFileOrUser}, http.StatusBadRequest, requestId)
			h.logs.Errorw("image prediction precondition failed",
				"error", err,
				"handler", PredictImage,
				"request_id", requestId)
			return
		}
		h.respondPredictErr(w, err, msgImagePredictFailed, PredictImage, requestId)
		return
	}

	h.respondRaw(w, prediction.Body, requestId)
}

func (h *CareHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userIdValue := r.URL.Query().Get("userId")
	userId, err := strconv.ParseUint(userIdValue, 10, 32)
	if err != nil || userId == 0 {
		h.respond(w, ErrorResponse{Error: msgMissingUserID}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing or invalid userId query parameter",
			"error", err,
			"handler", History,
			"request_id", requestId)
		return
	}

	entries, err := h.care.UserHistory(r.Context(), uint(userId))
	if err != nil {
		h.respond(w, ErrorResponse{Error: msgHistoryFailed}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get user history",
			"error", err,
			"handler", History,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.HistoryEntry{
		"history": entries,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CareHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, requestID(r))
}

func (h *CareHandler) respondPredictErr(w http.ResponseWriter, err error, failMsg string, route string, requestId string) {
	resp := ErrorResponse{Error: failMsg}
	httpCode := http.StatusInternalServerError
	if errors.Is(err, core.ErrPredictionTimeout) {
		resp.Error = msgPredictionTimeout
		httpCode = http.StatusGatewayTimeout
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("prediction failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// respondRaw passes the upstream response body through verbatim.
func (h *CareHandler) respondRaw(w http.ResponseWriter, body []byte, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *CareHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id := r.Context().Value(middleware.RequestIDKey); id != nil {
		return id.(string)
	}
	return ""
}
