package resources

import (
	"context"
	"fmt"

	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
)

// Backend executes built request specs. *request.Executor satisfies it;
// tests inject fakes.
type Backend interface {
	Execute(ctx context.Context, spec request.Spec) (any, error)
}

// asList narrows an execution result to a list envelope.
func asList(v any, err error) (*convert.List, error) {
	if err != nil {
		return nil, err
	}
	list, ok := v.(*convert.List)
	if !ok {
		return nil, fmt.Errorf("resources: unexpected response type %T, want a list", v)
	}
	return list, nil
}
