// Package request implements the builder/executor core shared by every
// resource module: an immutable request description assembled through
// chained calls, id normalization of structured references, deferred
// endpoint resolution, and a single execution entry point dispatching to a
// pluggable transport and converter.
package request

import "fmt"

// Method is an HTTP verb supported by the API.
type Method string

// Supported methods. Anything else is rejected when the spec is built.
const (
	Get    Method = "GET"
	Post   Method = "POST"
	Put    Method = "PUT"
	Patch  Method = "PATCH"
	Delete Method = "DELETE"
)

func (m Method) valid() bool {
	switch m {
	case Get, Post, Put, Patch, Delete:
		return true
	}
	return false
}

// Params holds the request parameters keyed by field name. Values may be
// scalars, nested mappings, sequences, or structured references that cast
// rules later reduce to plain ids.
type Params map[string]any

// Options carries per-call transport settings. The builder stores it
// untouched and hands it to the transport on execution; the core never
// inspects it.
type Options struct {
	APIKey         string
	APIVersion     string
	StripeAccount  string
	IdempotencyKey string
}

// Spec is the immutable description of a pending request. Every With*
// method returns a fresh value, so independent requests can be assembled
// concurrently from a shared base without coordination. A Spec is consumed
// exactly once by an Executor.
type Spec struct {
	opts   Options
	ep     endpoint
	method Method
	params Params
	casts  []castPath
}

// New returns an empty Spec carrying the given per-call options: no
// endpoint, no method, no params, no cast rules.
func New(opts Options) Spec {
	return Spec{opts: opts}
}

// WithEndpoint replaces the endpoint with a fixed resource path.
func (s Spec) WithEndpoint(path string) Spec {
	s.ep = staticEndpoint(path)
	return s
}

// WithEndpointFunc replaces the endpoint with a function computing the
// resource path from the final params. The function runs once, at execution
// time, after cast rules have been applied, so it observes structured
// references already reduced to ids. It must be free of side effects.
func (s Spec) WithEndpointFunc(fn EndpointFunc) Spec {
	s.ep = dynamicEndpoint(fn)
	return s
}

// WithMethod sets the HTTP verb. Passing a method outside the supported
// five is a programming error in the calling resource module and panics
// immediately rather than surfacing at execution time.
func (s Spec) WithMethod(m Method) Spec {
	if !m.valid() {
		panic(fmt.Sprintf("request: unsupported method %q", string(m)))
	}
	s.method = m
	return s
}

// WithParams merges p into the spec's params key-wise. On collision the new
// value wins; nested structures are replaced wholesale, never deep-merged.
func (s Spec) WithParams(p Params) Spec {
	if len(p) == 0 {
		return s
	}
	merged := make(Params, len(s.params)+len(p))
	for k, v := range s.params {
		merged[k] = v
	}
	for k, v := range p {
		merged[k] = v
	}
	s.params = merged
	return s
}

// WithParam sets a single param, overriding any previous value for key.
func (s Spec) WithParam(key string, value any) Spec {
	return s.WithParams(Params{key: value})
}

// WithCastKeys registers top-level fields whose values should be reduced to
// plain ids before serialization. Registering a key twice is a no-op.
func (s Spec) WithCastKeys(keys ...string) Spec {
	for _, k := range keys {
		s = s.withCast(castPath{k})
	}
	return s
}

// WithCastPath registers a nested field, addressed by the given key path,
// for id reduction at the leaf. Registering the same path twice is a no-op.
func (s Spec) WithCastPath(path ...string) Spec {
	if len(path) == 0 {
		return s
	}
	return s.withCast(castPath(path))
}

// withCast unions a single target into the cast set, copying the backing
// slice so earlier Spec values stay untouched.
func (s Spec) withCast(p castPath) Spec {
	for _, existing := range s.casts {
		if existing.equal(p) {
			return s
		}
	}
	casts := make([]castPath, len(s.casts), len(s.casts)+1)
	copy(casts, s.casts)
	s.casts = append(casts, p.clone())
	return s
}
