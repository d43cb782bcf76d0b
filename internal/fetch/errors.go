package fetch

import "fmt"

// NetworkError is a request that never produced a usable response: the
// connection failed, or the server answered with a non-2xx status.
type NetworkError struct {
	URL    string
	Status int // 0 when no response arrived
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusCode lets rate limiting tell overload from other failures.
func (e *NetworkError) StatusCode() int { return e.Status }

// DecodeError is a response whose body did not hold the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
