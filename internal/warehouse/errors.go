package warehouse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-success response from the warehouse API. Detail carries the
// server-supplied message when the response body contained one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("warehouse: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("warehouse: status %d", e.Status)
}

// ServerDetail returns the server-supplied message verbatim, or "" when the
// response carried none.
func (e *Error) ServerDetail() string {
	return e.Detail
}

// decodeError builds an *Error from a non-2xx response. The API wraps error
// messages as {"detail": "..."}; validation failures ship detail as a list,
// which is left out rather than stringified.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &payload)
	return &Error{Status: resp.StatusCode, Detail: payload.Detail}
}
