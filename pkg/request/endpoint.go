package request

import (
	"errors"
	"fmt"
)

// EndpointFunc computes a resource path from the final, already-cast
// params. It must be pure: no side effects, no dependence on anything but
// its argument.
type EndpointFunc func(params Params) (string, error)

// endpoint is the tagged endpoint variant: unset (nil), static, or dynamic.
// Keeping the variants sealed makes resolveEndpoint's switch exhaustive,
// with the unset case an explicit third arm.
type endpoint interface {
	isEndpoint()
}

type staticEndpoint string

type dynamicEndpoint EndpointFunc

func (staticEndpoint) isEndpoint()  {}
func (dynamicEndpoint) isEndpoint() {}

// ErrInvalidEndpoint reports a spec executed with its endpoint unset. This
// is always a bug in the calling resource module, never a runtime
// condition, and is not retried.
var ErrInvalidEndpoint = errors.New("request: endpoint is unset")

// ErrInvalidMethod reports a spec executed with its method unset.
var ErrInvalidMethod = errors.New("request: method is unset")

// EndpointFuncError reports a dynamic endpoint function that did not
// produce a usable path. Result carries what the function returned, for
// diagnosis.
type EndpointFuncError struct {
	Result string
	Err    error
}

func (e *EndpointFuncError) Error() string {
	return fmt.Sprintf("request: endpoint function returned an invalid result %q: %v", e.Result, e.Err)
}

func (e *EndpointFuncError) Unwrap() error { return e.Err }

// resolveEndpoint reduces the endpoint variant to a concrete path. It runs
// strictly after casting, so dynamic functions observe normalized params.
func resolveEndpoint(ep endpoint, params Params) (string, error) {
	switch t := ep.(type) {
	case staticEndpoint:
		return string(t), nil
	case dynamicEndpoint:
		if t == nil {
			return "", ErrInvalidEndpoint
		}
		path, err := t(params)
		if err != nil {
			return "", &EndpointFuncError{Result: path, Err: err}
		}
		if path == "" {
			return "", &EndpointFuncError{Result: path, Err: errors.New("empty path")}
		}
		return path, nil
	default:
		return "", ErrInvalidEndpoint
	}
}
