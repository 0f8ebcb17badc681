package resources

import (
	"context"
	"fmt"

	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
)

// Refunds exposes the refund endpoints.
type Refunds struct {
	backend Backend
}

// NewRefunds builds a refund service over the given backend.
func NewRefunds(b Backend) *Refunds {
	return &Refunds{backend: b}
}

// Create refunds a charge, in full unless an amount param narrows it. The
// charge may be passed as a typed value.
func (s *Refunds) Create(ctx context.Context, charge any, params request.Params, opts request.Options) (*Refund, error) {
	spec := request.New(opts).
		WithEndpoint("refunds").
		WithMethod(request.Post).
		WithParams(params).
		WithParam("charge", charge).
		WithCastKeys("charge")
	return asRefund(s.backend.Execute(ctx, spec))
}

// Retrieve fetches a refund by id or by a value carrying one.
func (s *Refunds) Retrieve(ctx context.Context, refund any, opts request.Options) (*Refund, error) {
	spec := request.New(opts).
		WithEndpoint("refunds/" + request.ID(refund)).
		WithMethod(request.Get)
	return asRefund(s.backend.Execute(ctx, spec))
}

// Update updates a refund's metadata.
func (s *Refunds) Update(ctx context.Context, refund any, params request.Params, opts request.Options) (*Refund, error) {
	spec := request.New(opts).
		WithEndpoint("refunds/" + request.ID(refund)).
		WithMethod(request.Post).
		WithParams(params)
	return asRefund(s.backend.Execute(ctx, spec))
}

// List lists refunds, optionally filtered to one charge via the charge
// param.
func (s *Refunds) List(ctx context.Context, params request.Params, opts request.Options) (*convert.List, error) {
	spec := request.New(opts).
		WithEndpoint("refunds").
		WithMethod(request.Get).
		WithParams(params).
		WithCastKeys("charge")
	return asList(s.backend.Execute(ctx, spec))
}

func asRefund(v any, err error) (*Refund, error) {
	if err != nil {
		return nil, err
	}
	refund, ok := v.(*Refund)
	if !ok {
		return nil, fmt.Errorf("resources: unexpected response type %T, want a refund", v)
	}
	return refund, nil
}
