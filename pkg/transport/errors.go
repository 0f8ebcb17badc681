package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hassan/stripity-stripe/pkg/request"
)

// ErrMissingAPIKey reports a call attempted without an API key from either
// the per-call options or the transport config.
var ErrMissingAPIKey = errors.New("transport: no API key configured")

// RequestError wraps a failure that happened before a well-formed API reply
// arrived: connection problems, timeouts, cancelled contexts.
type RequestError struct {
	Method   request.Method
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a structured rejection reported by the API itself.
type APIError struct {
	Status  int
	Type    string
	Code    string
	Param   string
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request rejected"
	}
	return fmt.Sprintf("transport: API error (status %d, type %q, code %q): %s", e.Status, e.Type, e.Code, msg)
}

// apiErrorBody mirrors the error envelope the API wraps rejections in.
type apiErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Param   string `json:"param"`
		Message string `json:"message"`
	} `json:"error"`
}

// apiErrorFrom classifies a non-2xx reply. Bodies that do not carry the
// error envelope still produce an APIError with a body snippet as message.
func apiErrorFrom(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}

	var body apiErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		apiErr.Type = body.Error.Type
		apiErr.Code = body.Error.Code
		apiErr.Param = body.Error.Param
		apiErr.Message = body.Error.Message
		return apiErr
	}

	apiErr.Message = bodySnippet(resp.Body())
	return apiErr
}

// bodySnippet trims an unparseable error body down to a loggable size.
func bodySnippet(body []byte) string {
	const maxSnippet = 256
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippet {
		s = s[:maxSnippet] + "..."
	}
	return s
}
