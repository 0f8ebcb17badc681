package request

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Executor consumes a Spec: it applies cast rules, resolves the endpoint,
// dispatches to the transport and hands the raw response to the converter.
// The steps run strictly in sequence and short-circuit on the first
// failure; the transport call is the only effectful one, so a failed
// execution leaves nothing to roll back.
type Executor struct {
	transport Transport
	converter Converter
	log       *zap.SugaredLogger
}

// NewExecutor builds an Executor over the given transport and converter. A
// nil converter makes Execute return the raw transport response; a nil
// logger keeps the executor silent.
func NewExecutor(t Transport, c Converter, log *zap.SugaredLogger) *Executor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Executor{transport: t, converter: c, log: log}
}

// Execute runs the spec once and returns the converted result. Cast
// application never fails; endpoint resolution failures and unset fields
// surface as definitional errors without touching the network; transport
// errors pass through verbatim. Nothing is retried here.
func (e *Executor) Execute(ctx context.Context, spec Spec) (any, error) {
	if e == nil || e.transport == nil {
		return nil, fmt.Errorf("request: executor has no transport")
	}

	params := applyCasts(spec.params, spec.casts)

	path, err := resolveEndpoint(spec.ep, params)
	if err != nil {
		return nil, err
	}
	if !spec.method.valid() {
		return nil, ErrInvalidMethod
	}

	e.log.Debugw("dispatching request", "method", string(spec.method), "endpoint", path)
	resp, err := e.transport.Do(ctx, spec.method, path, params, nil, spec.opts)
	if err != nil {
		return nil, err
	}

	if e.converter == nil {
		return resp, nil
	}
	out, err := e.converter.Convert(resp)
	if err != nil {
		return nil, fmt.Errorf("convert response: %w", err)
	}
	return out, nil
}
