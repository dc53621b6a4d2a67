package genability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

// Upper bound on error bodies kept in a TransportError.
const maxErrorBody = 4 << 10

type call struct {
	method      string
	path        string
	params      request.Params
	body        io.Reader
	contentType string
}

// orEmpty lets callers pass a nil request to mean "no filters".
func orEmpty[R any](r *R) *R {
	if r == nil {
		return new(R)
	}
	return r
}

func getCall(path string, r request.Encoder) call {
	return call{method: http.MethodGet, path: path, params: r.QueryParams()}
}

func jsonCall(method, path string, payload any) (call, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return call{}, fmt.Errorf("encoding %s body: %w", path, err)
	}
	return call{method: method, path: path, body: bytes.NewReader(data), contentType: "application/json"}, nil
}

func multipartCall(path string, r *request.BulkUploadRequest) (call, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range r.FormFields() {
		if err := w.WriteField(field.Name, field.Value); err != nil {
			return call{}, fmt.Errorf("writing form field %s: %w", field.Name, err)
		}
	}
	if r.FileData != nil {
		name := r.FileName
		if name == "" {
			name = "fileData"
		}
		part, err := w.CreateFormFile("fileData", name)
		if err != nil {
			return call{}, fmt.Errorf("creating file part: %w", err)
		}
		if _, err := io.Copy(part, r.FileData); err != nil {
			return call{}, fmt.Errorf("copying file data: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return call{}, fmt.Errorf("closing multipart body: %w", err)
	}
	return call{method: http.MethodPost, path: path, body: &buf, contentType: w.FormDataContentType()}, nil
}

// do executes one request and decodes the envelope. A non-success status in
// the envelope is returned as-is with a nil error.
func do[T any](ctx context.Context, c *Client, cl call) (*types.Response[T], error) {
	url := c.restAPIServer + cl.path
	if len(cl.params) > 0 {
		url += "?" + cl.params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, url, cl.body)
	if err != nil {
		return nil, &TransportError{Op: "build", Method: cl.method, URL: url, Err: err}
	}
	req.SetBasicAuth(c.appID, c.appKey)
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "send", Method: cl.method, URL: url, Err: err}
	}
	defer res.Body.Close()

	c.logger.Debug("genability call",
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)))

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Op: "read", Method: cl.method, URL: url, StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &TransportError{Op: "status", Method: cl.method, URL: url, StatusCode: res.StatusCode, Body: body}
	}

	resBody := new(types.Response[T])
	if err := json.Unmarshal(body, resBody); err != nil {
		return nil, &TransportError{Op: "decode", Method: cl.method, URL: url, StatusCode: res.StatusCode, Err: err}
	}
	if resBody.Status == "" {
		return nil, &TransportError{Op: "decode", Method: cl.method, URL: url, StatusCode: res.StatusCode, Err: errNotEnvelope}
	}

	if !resBody.IsSuccess() {
		c.logger.Warn("genability reported a functional error",
			slog.String("path", cl.path),
			slog.String("status", resBody.Status),
			slog.String("type", resBody.Type),
			slog.Int("errors", len(resBody.Errors)))
	}

	return resBody, nil
}
