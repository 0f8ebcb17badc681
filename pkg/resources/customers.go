package resources

import (
	"context"
	"fmt"

	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
)

// Customers exposes the customer endpoints.
type Customers struct {
	backend Backend
}

// NewCustomers builds a customer service over the given backend.
func NewCustomers(b Backend) *Customers {
	return &Customers{backend: b}
}

// Create creates a new customer. Coupon and source references may be
// passed as typed values.
func (s *Customers) Create(ctx context.Context, params request.Params, opts request.Options) (*Customer, error) {
	spec := request.New(opts).
		WithEndpoint("customers").
		WithMethod(request.Post).
		WithParams(params).
		WithCastKeys("coupon", "source")
	return asCustomer(s.backend.Execute(ctx, spec))
}

// Retrieve fetches a customer by id or by a value carrying one.
func (s *Customers) Retrieve(ctx context.Context, customer any, opts request.Options) (*Customer, error) {
	spec := request.New(opts).
		WithEndpoint("customers/" + request.ID(customer)).
		WithMethod(request.Get)
	return asCustomer(s.backend.Execute(ctx, spec))
}

// Update updates a customer's updatable fields.
func (s *Customers) Update(ctx context.Context, customer any, params request.Params, opts request.Options) (*Customer, error) {
	spec := request.New(opts).
		WithEndpoint("customers/"+request.ID(customer)).
		WithMethod(request.Post).
		WithParams(params).
		WithCastKeys("coupon", "source")
	return asCustomer(s.backend.Execute(ctx, spec))
}

// Delete deletes a customer. The API echoes the customer back with its
// deleted flag set.
func (s *Customers) Delete(ctx context.Context, customer any, opts request.Options) (*Customer, error) {
	spec := request.New(opts).
		WithEndpoint("customers/" + request.ID(customer)).
		WithMethod(request.Delete)
	return asCustomer(s.backend.Execute(ctx, spec))
}

// List lists customers, newest first.
func (s *Customers) List(ctx context.Context, params request.Params, opts request.Options) (*convert.List, error) {
	spec := request.New(opts).
		WithEndpoint("customers").
		WithMethod(request.Get).
		WithParams(params)
	return asList(s.backend.Execute(ctx, spec))
}

func asCustomer(v any, err error) (*Customer, error) {
	if err != nil {
		return nil, err
	}
	customer, ok := v.(*Customer)
	if !ok {
		return nil, fmt.Errorf("resources: unexpected response type %T, want a customer", v)
	}
	return customer, nil
}
