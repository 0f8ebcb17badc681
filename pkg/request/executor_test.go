package request

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubResponse is a canned transport reply.
type stubResponse struct {
	body   []byte
	status int
}

func (r stubResponse) Body() []byte    { return r.body }
func (r stubResponse) StatusCode() int { return r.status }

// stubTransport records the call it receives and returns preset results.
type stubTransport struct {
	calls    int
	method   Method
	endpoint string
	params   Params
	headers  map[string]string
	opts     Options

	resp Response
	err  error
}

func (s *stubTransport) Do(_ context.Context, method Method, endpoint string, params Params, headers map[string]string, opts Options) (Response, error) {
	s.calls++
	s.method = method
	s.endpoint = endpoint
	s.params = params
	s.headers = headers
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

// stubConverter tags whatever it receives so tests can assert it ran.
type stubConverter struct {
	calls int
	out   any
	err   error
}

func (c *stubConverter) Convert(Response) (any, error) {
	c.calls++
	return c.out, c.err
}

func TestExecuteEndToEnd(t *testing.T) {
	tr := &stubTransport{resp: stubResponse{body: []byte(`{"object":"charge"}`), status: 200}}
	cv := &stubConverter{out: "converted"}
	exec := NewExecutor(tr, cv, nil)

	spec := New(Options{APIKey: "sk_test"}).
		WithEndpoint("charges/ch_1/capture").
		WithMethod(Post).
		WithParam("amount", 100)

	got, err := exec.Execute(context.Background(), spec)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "converted" {
		t.Fatalf("result = %v, want converted", got)
	}
	if tr.calls != 1 || cv.calls != 1 {
		t.Fatalf("transport calls = %d, converter calls = %d", tr.calls, cv.calls)
	}
	if tr.method != Post || tr.endpoint != "charges/ch_1/capture" {
		t.Fatalf("dispatched %s %s", tr.method, tr.endpoint)
	}
	if !reflect.DeepEqual(tr.params, Params{"amount": 100}) {
		t.Fatalf("transport params = %v", tr.params)
	}
	if tr.opts.APIKey != "sk_test" {
		t.Fatalf("options not passed through: %+v", tr.opts)
	}
}

func TestExecuteCastsBeforeDynamicEndpoint(t *testing.T) {
	tr := &stubTransport{resp: stubResponse{status: 200}}
	exec := NewExecutor(tr, nil, nil)

	spec := New(Options{}).
		WithEndpointFunc(func(p Params) (string, error) {
			id, ok := p["charge"].(string)
			if !ok {
				return "", errors.New("charge param is not an id")
			}
			return "charges/" + id + "/capture", nil
		}).
		WithMethod(Post).
		WithParam("charge", fakeCustomer{ID: "ch_7"}).
		WithCastKeys("charge")

	if _, err := exec.Execute(context.Background(), spec); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if tr.endpoint != "charges/ch_7/capture" {
		t.Fatalf("endpoint = %q", tr.endpoint)
	}
	if tr.params["charge"] != "ch_7" {
		t.Fatalf("transport saw uncast params: %v", tr.params)
	}
}

func TestExecuteUnsetEndpointFails(t *testing.T) {
	tr := &stubTransport{}
	cv := &stubConverter{}
	exec := NewExecutor(tr, cv, nil)

	// A completely empty spec is constructible; execution must fail on
	// the endpoint before anything else runs.
	if _, err := exec.Execute(context.Background(), New(Options{})); !errors.Is(err, ErrInvalidEndpoint) {
		t.Fatalf("error = %v, want ErrInvalidEndpoint", err)
	}

	spec := New(Options{}).WithMethod(Get)
	if _, err := exec.Execute(context.Background(), spec); !errors.Is(err, ErrInvalidEndpoint) {
		t.Fatalf("error = %v, want ErrInvalidEndpoint", err)
	}
	if tr.calls != 0 || cv.calls != 0 {
		t.Fatalf("collaborators invoked on invalid spec")
	}
}

func TestExecuteUnsetMethodFails(t *testing.T) {
	tr := &stubTransport{}
	exec := NewExecutor(tr, nil, nil)

	spec := New(Options{}).WithEndpoint("charges")
	if _, err := exec.Execute(context.Background(), spec); !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("error = %v, want ErrInvalidMethod", err)
	}
	if tr.calls != 0 {
		t.Fatalf("transport invoked on invalid spec")
	}
}

func TestExecuteDynamicEndpointFailureSkipsTransport(t *testing.T) {
	tr := &stubTransport{}
	exec := NewExecutor(tr, nil, nil)

	spec := New(Options{}).
		WithEndpointFunc(func(Params) (string, error) { return "", errors.New("bad") }).
		WithMethod(Get)

	_, err := exec.Execute(context.Background(), spec)
	var epErr *EndpointFuncError
	if !errors.As(err, &epErr) {
		t.Fatalf("error = %v, want *EndpointFuncError", err)
	}
	if tr.calls != 0 {
		t.Fatalf("transport invoked after endpoint failure")
	}
}

func TestExecuteForwardsTransportErrorVerbatim(t *testing.T) {
	boom := errors.New("rate limited")
	tr := &stubTransport{err: boom}
	cv := &stubConverter{}
	exec := NewExecutor(tr, cv, nil)

	spec := New(Options{}).WithEndpoint("charges").WithMethod(Get)
	if _, err := exec.Execute(context.Background(), spec); err != boom {
		t.Fatalf("error = %v, want the transport error unchanged", err)
	}
	if cv.calls != 0 {
		t.Fatalf("converter invoked after transport failure")
	}
}

func TestExecuteNilConverterReturnsRawResponse(t *testing.T) {
	resp := stubResponse{body: []byte("raw"), status: 200}
	exec := NewExecutor(&stubTransport{resp: resp}, nil, nil)

	spec := New(Options{}).WithEndpoint("charges").WithMethod(Get)
	got, err := exec.Execute(context.Background(), spec)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(got, resp) {
		t.Fatalf("result = %v, want the raw response", got)
	}
}
