// Package payment abstracts the payment provider behind an interface so the
// verification handler never depends on a concrete gateway. The default
// implementation is a test-mode stub that trusts the client.
package payment

import (
	"context" // Context for provider calls

	"github.com/google/uuid" // Fabricated payment ids
)

// VerifyRequest carries what the client claims about a completed payment
type VerifyRequest struct {
	PaymentOrderID string // External payment order code being verified
	PaymentID      string // Provider payment id claimed by the client, may be empty
	PaymentMethod  string // Payment method claimed by the client, may be empty
}

// Confirmation is the provider's settled view of a verified payment
type Confirmation struct {
	PaymentID     string // Final provider payment id
	PaymentMethod string // Final payment method
}

// Provider verifies a payment with the upstream gateway.
// A real implementation would check the provider signature or settlement webhook.
type Provider interface {
	Verify(ctx context.Context, req VerifyRequest) (Confirmation, error)
}

// TestProvider accepts every verification request without contacting a gateway
type TestProvider struct{}

// NewTestProvider returns the test-mode stub provider
func NewTestProvider() *TestProvider {
	return &TestProvider{}
}

// Verify fills in demo values for anything the client did not supply
func (p *TestProvider) Verify(_ context.Context, req VerifyRequest) (Confirmation, error) {
	c := Confirmation{
		PaymentID:     req.PaymentID,     // Trust the client's id when present
		PaymentMethod: req.PaymentMethod, // Trust the client's method when present
	}
	if c.PaymentID == "" {
		// Fabricate a recognizable demo id
		c.PaymentID = "demo_payment_" + uuid.NewString()[:8]
	}
	if c.PaymentMethod == "" {
		c.PaymentMethod = "card" // Default method
	}
	return c, nil
}
