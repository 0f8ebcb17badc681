package resources

import (
	"context"
	"fmt"

	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
)

// Charges exposes the charge endpoints.
type Charges struct {
	backend Backend
}

// NewCharges builds a charge service over the given backend.
func NewCharges(b Backend) *Charges {
	return &Charges{backend: b}
}

// Create creates a new charge. Customer, source and destination account
// references may be passed as typed values; they are reduced to ids before
// serialization.
func (s *Charges) Create(ctx context.Context, params request.Params, opts request.Options) (*Charge, error) {
	spec := request.New(opts).
		WithEndpoint("charges").
		WithMethod(request.Post).
		WithParams(params).
		WithCastKeys("customer", "source").
		WithCastPath("destination", "account")
	return asCharge(s.backend.Execute(ctx, spec))
}

// Retrieve fetches a charge by id or by a value carrying one.
func (s *Charges) Retrieve(ctx context.Context, charge any, opts request.Options) (*Charge, error) {
	spec := request.New(opts).
		WithEndpoint("charges/" + request.ID(charge)).
		WithMethod(request.Get)
	return asCharge(s.backend.Execute(ctx, spec))
}

// Update updates a charge's updatable fields.
func (s *Charges) Update(ctx context.Context, charge any, params request.Params, opts request.Options) (*Charge, error) {
	spec := request.New(opts).
		WithEndpoint("charges/" + request.ID(charge)).
		WithMethod(request.Post).
		WithParams(params).
		WithCastKeys("customer")
	return asCharge(s.backend.Execute(ctx, spec))
}

// Capture captures a previously uncaptured charge. The path is computed
// after casting, so the charge may be passed as a typed value.
func (s *Charges) Capture(ctx context.Context, charge any, params request.Params, opts request.Options) (*Charge, error) {
	spec := request.New(opts).
		WithEndpointFunc(func(p request.Params) (string, error) {
			id, ok := p["charge"].(string)
			if !ok {
				return "", fmt.Errorf("capture requires a charge id, got %T", p["charge"])
			}
			return "charges/" + id + "/capture", nil
		}).
		WithMethod(request.Post).
		WithParams(params).
		WithParam("charge", charge).
		WithCastKeys("charge")
	return asCharge(s.backend.Execute(ctx, spec))
}

// List lists charges, newest first. Filters go in params; a customer
// filter may be a typed value.
func (s *Charges) List(ctx context.Context, params request.Params, opts request.Options) (*convert.List, error) {
	spec := request.New(opts).
		WithEndpoint("charges").
		WithMethod(request.Get).
		WithParams(params).
		WithCastKeys("customer")
	return asList(s.backend.Execute(ctx, spec))
}

func asCharge(v any, err error) (*Charge, error) {
	if err != nil {
		return nil, err
	}
	charge, ok := v.(*Charge)
	if !ok {
		return nil, fmt.Errorf("resources: unexpected response type %T, want a charge", v)
	}
	return charge, nil
}
