// Package payment implements the hosted-gateway handoff for online payment.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"html/template"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// esewaGateway builds the signed auto-submitting form the eSewa ePay v2 API
// expects. The client renders the returned HTML and the browser posts it to
// the gateway.
type esewaGateway struct {
	cfg *config.EsewaConfig
}

// NewEsewaGateway is the constructor for esewaGateway.
func NewEsewaGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Esewa == nil || cfg.Esewa.SecretKey == "" || cfg.Esewa.ProductCode == "" {
		return nil, errors.New("esewa config is required")
	}

	return &esewaGateway{cfg: cfg.Esewa}, nil
}

var esewaFormTmpl = template.Must(template.New("esewa").Parse(`<html>
<body onload="document.forms['esewa'].submit()">
<form name="esewa" action="{{.Action}}" method="POST">
<input type="hidden" name="amount" value="{{.Amount}}">
<input type="hidden" name="tax_amount" value="0">
<input type="hidden" name="total_amount" value="{{.Amount}}">
<input type="hidden" name="transaction_uuid" value="{{.TransactionUUID}}">
<input type="hidden" name="product_code" value="{{.ProductCode}}">
<input type="hidden" name="product_service_charge" value="0">
<input type="hidden" name="product_delivery_charge" value="0">
<input type="hidden" name="success_url" value="{{.SuccessURL}}">
<input type="hidden" name="failure_url" value="{{.FailureURL}}">
<input type="hidden" name="signed_field_names" value="total_amount,transaction_uuid,product_code">
<input type="hidden" name="signature" value="{{.Signature}}">
</form>
</body>
</html>`))

// BuildRedirect signs a fresh transaction and renders the gateway form.
func (g *esewaGateway) BuildRedirect(_ context.Context, amount int64) (*service.PaymentRedirect, error) {
	transactionID := uuid.New().String()
	signature := Sign(amount, transactionID, g.cfg.ProductCode, g.cfg.SecretKey)

	var buf bytes.Buffer
	err := esewaFormTmpl.Execute(&buf, map[string]string{
		"Action":          g.cfg.FormURL,
		"Amount":          fmt.Sprintf("%d", amount),
		"TransactionUUID": transactionID,
		"ProductCode":     g.cfg.ProductCode,
		"SuccessURL":      g.cfg.SuccessURL,
		"FailureURL":      g.cfg.FailureURL,
		"Signature":       signature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render esewa form")
	}

	return &service.PaymentRedirect{
		FormHTML:      buf.String(),
		GatewayURL:    g.cfg.FormURL,
		TransactionID: transactionID,
	}, nil
}

// Sign computes the eSewa request signature: HMAC-SHA256 over the signed
// fields in their declared order, base64 encoded.
func Sign(totalAmount int64, transactionUUID, productCode, secret string) string {
	message := fmt.Sprintf("total_amount=%d,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, productCode)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
