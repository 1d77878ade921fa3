package transport

import (
	"errors"
	"fmt"
)

// Dispatch errors, designed for errors.Is/As classification by callers.
//
// Classification strategy:
//   - ErrExhausted: every cluster member was unreachable (retried, then reported)
//   - *HTTPError: the service answered definitively with a non-2xx status (never retried)
//   - ErrDecode: a 2xx response carried a malformed body (never retried)
var (
	ErrExhausted = errors.New("unable to connect to Algolia")
	ErrDecode    = errors.New("malformed response body")
)

// HTTPError is a definitive non-2xx answer from the service, surfaced with
// the raw body so callers can inspect the service's error payload.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

// IsExhausted reports whether err indicates the whole cluster was unreachable.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrExhausted)
}
