package request

import "context"

// Response is the minimal surface of a transport reply the core hands to
// conversion. Concrete transports adapt their own response type to it.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Transport performs the actual HTTP call. It owns authentication, wire
// encoding, retries and network-level error classification; the core only
// supplies the already-normalized call description.
type Transport interface {
	Do(ctx context.Context, method Method, endpoint string, params Params, headers map[string]string, opts Options) (Response, error)
}

// Converter maps a raw transport response into a typed domain value. The
// core treats it as an opaque mapping and forwards whatever it returns.
type Converter interface {
	Convert(resp Response) (any, error)
}
