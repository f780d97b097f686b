package service

import "context"

// PaymentRedirect is a hosted-page handoff for an external payment gateway.
// The storefront's responsibility ends at producing the handoff; reconciling
// payment completion happens out of band.
type PaymentRedirect struct {
	// FormHTML is an auto-submitting HTML form that forwards the shopper to
	// the gateway's hosted payment page.
	FormHTML string `json:"form_html"`
	// GatewayURL is the hosted page the form posts to.
	GatewayURL string `json:"gateway_url"`
	// TransactionID is the unique id assigned to this payment attempt.
	TransactionID string `json:"transaction_id"`
}

// PaymentGateway builds hosted-page handoffs for redirect-based payment.
type PaymentGateway interface {
	// BuildRedirect produces the signed handoff for the given total amount
	// in whole rupees.
	BuildRedirect(ctx context.Context, amount int64) (*PaymentRedirect, error)
}
