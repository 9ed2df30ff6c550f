package service

import (
	"context"
)

// PaymentIntentRequest asks the gateway to prepare a charge. Amount is in
// the gateway's minor units (cents).
type PaymentIntentRequest struct {
	OrderID     string
	BuyerID     string
	AmountCents int64
	Currency    string
}

// PaymentIntentResponse carries the gateway's opaque intent identifier and
// the client-usable secret for completing the charge in the browser.
type PaymentIntentResponse struct {
	IntentID     string
	ClientSecret string
	Status       string
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResponse, error)
}
