package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
)

var ErrTimeout error = errors.New("inference request timed out")

const (
	noFormPrediction  = "No prediction"
	noImagePrediction = "No result"
)

// Client talks to the external inference endpoint. The raw uploaded bytes are
// not retained beyond the call.
type Client struct {
	client  HTTPClient
	baseURL string
}

func NewClient(httpClient HTTPClient, baseURL string) *Client {
	return &Client{
		client:  httpClient,
		baseURL: baseURL,
	}
}

func (c *Client) PredictForm(ctx context.Context, data json.RawMessage) (Result, error) {
	body, err := json.Marshal(map[string]json.RawMessage{"data": data})
	if err != nil {
		return Result{}, fmt.Errorf("marshal form payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, noFormPrediction)
}

func (c *Client) PredictImage(ctx context.Context, upload Upload) (Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.Filename))
	if upload.ContentType != "" {
		header.Set("Content-Type", upload.ContentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return Result{}, fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err = part.Write(upload.Content); err != nil {
		return Result{}, fmt.Errorf("write multipart file content: %w", err)
	}
	if err = writer.Close(); err != nil {
		return Result{}, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict-image", &buf)
	if err != nil {
		return Result{}, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, noImagePrediction)
}

func (c *Client) send(req *http.Request, sentinel string) (Result, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrTimeout, err)
		}
		return Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Result{}, fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	prediction := sentinel
	var parsed struct {
		Prediction string `json:"prediction"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Prediction != "" {
		prediction = parsed.Prediction
	}

	return Result{
		Body:       body,
		Prediction: prediction,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
