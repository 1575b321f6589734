package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	remoteErr := &RemoteError{Status: resp.StatusCode(), Message: bodyMessage(resp.Body())}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		remoteErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		remoteErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		remoteErr.Err = ErrForbidden
	case http.StatusNotFound:
		remoteErr.Err = ErrNotFound
	case http.StatusConflict:
		remoteErr.Err = ErrConflict
	case http.StatusBadGateway:
		remoteErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		remoteErr.Err = ErrInternalServerError
	default:
		remoteErr.Err = ErrUnexpectedStatus
		if remoteErr.Message == "" {
			remoteErr.Message = http.StatusText(resp.StatusCode())
		}
	}

	return remoteErr
}

// bodyMessage extracts the "message" (or "error") field of a JSON error body
// and falls back to the trimmed raw body.
func bodyMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	return strings.TrimSpace(string(body))
}

func rejected(message string) error {
	return &RemoteError{Status: http.StatusOK, Message: message, Err: ErrRejected}
}
