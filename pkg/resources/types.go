// Package resources implements typed access to individual API resources.
// Each service assembles a request spec through the builder core and hands
// it to a backend executor; the types here are what the converter
// materializes responses into.
package resources

import "github.com/hassan/stripity-stripe/pkg/convert"

// API object names, as they appear in response payloads.
const (
	ObjectCharge   = "charge"
	ObjectCustomer = "customer"
	ObjectCoupon   = "coupon"
	ObjectRefund   = "refund"
)

// Charge represents a charge on a card or other payment source.
type Charge struct {
	ID             string            `json:"id"`
	Object         string            `json:"object"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amount_refunded"`
	Captured       bool              `json:"captured"`
	Created        int64             `json:"created"`
	Currency       string            `json:"currency"`
	Customer       string            `json:"customer"`
	Description    string            `json:"description"`
	FailureCode    string            `json:"failure_code"`
	FailureMessage string            `json:"failure_message"`
	Livemode       bool              `json:"livemode"`
	Metadata       map[string]string `json:"metadata"`
	Paid           bool              `json:"paid"`
	Refunded       bool              `json:"refunded"`
	Status         string            `json:"status"`
}

// StripeID lets a Charge stand in anywhere an id is expected.
func (c *Charge) StripeID() string { return c.ID }

// Customer represents a customer of the account.
type Customer struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Created       int64             `json:"created"`
	Currency      string            `json:"currency"`
	DefaultSource string            `json:"default_source"`
	Deleted       bool              `json:"deleted"`
	Delinquent    bool              `json:"delinquent"`
	Description   string            `json:"description"`
	Email         string            `json:"email"`
	Livemode      bool              `json:"livemode"`
	Metadata      map[string]string `json:"metadata"`
}

func (c *Customer) StripeID() string { return c.ID }

// Coupon represents a discount that can be applied to customers.
type Coupon struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	AmountOff        int64             `json:"amount_off"`
	Created          int64             `json:"created"`
	Currency         string            `json:"currency"`
	Deleted          bool              `json:"deleted"`
	Duration         string            `json:"duration"`
	DurationInMonths int64             `json:"duration_in_months"`
	Livemode         bool              `json:"livemode"`
	MaxRedemptions   int64             `json:"max_redemptions"`
	Metadata         map[string]string `json:"metadata"`
	PercentOff       float64           `json:"percent_off"`
	RedeemBy         int64             `json:"redeem_by"`
	TimesRedeemed    int64             `json:"times_redeemed"`
	Valid            bool              `json:"valid"`
}

func (c *Coupon) StripeID() string { return c.ID }

// Refund represents a refund of a charge.
type Refund struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Amount        int64             `json:"amount"`
	Charge        string            `json:"charge"`
	Created       int64             `json:"created"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
	Reason        string            `json:"reason"`
	ReceiptNumber string            `json:"receipt_number"`
	Status        string            `json:"status"`
}

func (r *Refund) StripeID() string { return r.ID }

// RegisterObjects wires every resource type into the converter registry.
func RegisterObjects(c *convert.Converter) {
	if c == nil {
		return
	}
	c.Register(ObjectCharge, Charge{})
	c.Register(ObjectCustomer, Customer{})
	c.Register(ObjectCoupon, Coupon{})
	c.Register(ObjectRefund, Refund{})
}
