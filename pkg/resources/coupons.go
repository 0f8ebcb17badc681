package resources

import (
	"context"
	"fmt"

	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
)

// Coupons exposes the coupon endpoints.
type Coupons struct {
	backend Backend
}

// NewCoupons builds a coupon service over the given backend.
func NewCoupons(b Backend) *Coupons {
	return &Coupons{backend: b}
}

// Create creates a new coupon.
func (s *Coupons) Create(ctx context.Context, params request.Params, opts request.Options) (*Coupon, error) {
	spec := request.New(opts).
		WithEndpoint("coupons").
		WithMethod(request.Post).
		WithParams(params)
	return asCoupon(s.backend.Execute(ctx, spec))
}

// Retrieve fetches a coupon by id or by a value carrying one.
func (s *Coupons) Retrieve(ctx context.Context, coupon any, opts request.Options) (*Coupon, error) {
	spec := request.New(opts).
		WithEndpoint("coupons/" + request.ID(coupon)).
		WithMethod(request.Get)
	return asCoupon(s.backend.Execute(ctx, spec))
}

// Delete deletes a coupon. Customers already holding it keep their
// discount.
func (s *Coupons) Delete(ctx context.Context, coupon any, opts request.Options) (*Coupon, error) {
	spec := request.New(opts).
		WithEndpoint("coupons/" + request.ID(coupon)).
		WithMethod(request.Delete)
	return asCoupon(s.backend.Execute(ctx, spec))
}

// List lists coupons.
func (s *Coupons) List(ctx context.Context, params request.Params, opts request.Options) (*convert.List, error) {
	spec := request.New(opts).
		WithEndpoint("coupons").
		WithMethod(request.Get).
		WithParams(params)
	return asList(s.backend.Execute(ctx, spec))
}

func asCoupon(v any, err error) (*Coupon, error) {
	if err != nil {
		return nil, err
	}
	coupon, ok := v.(*Coupon)
	if !ok {
		return nil, fmt.Errorf("resources: unexpected response type %T, want a coupon", v)
	}
	return coupon, nil
}
