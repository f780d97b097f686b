package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEsewaConfig() *config.Config {
	return &config.Config{
		Esewa: &config.EsewaConfig{
			FormURL:     "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
			ProductCode: "EPAYTEST",
			SecretKey:   "8gBm/:&EnhH.1/q",
			SuccessURL:  "https://storefront.example.com/payment/success",
			FailureURL:  "https://storefront.example.com/payment/failure",
		},
	}
}

func TestSign_MatchesReferenceHMAC(t *testing.T) {
	secret := "8gBm/:&EnhH.1/q"
	signature := Sign(110, "241028", "EPAYTEST", secret)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("total_amount=110,transaction_uuid=241028,product_code=EPAYTEST"))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, signature)

	// Base64 output decodes to a full SHA-256 digest.
	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	assert.Len(t, raw, sha256.Size)
}

func TestSign_SensitiveToEveryField(t *testing.T) {
	base := Sign(110, "241028", "EPAYTEST", "secret")

	assert.NotEqual(t, base, Sign(111, "241028", "EPAYTEST", "secret"))
	assert.NotEqual(t, base, Sign(110, "241029", "EPAYTEST", "secret"))
	assert.NotEqual(t, base, Sign(110, "241028", "OTHER", "secret"))
	assert.NotEqual(t, base, Sign(110, "241028", "EPAYTEST", "other-secret"))
}

func TestEsewaGateway_BuildRedirect(t *testing.T) {
	gateway, err := NewEsewaGateway(testEsewaConfig())
	require.NoError(t, err)

	redirect, err := gateway.BuildRedirect(context.Background(), 2300)
	require.NoError(t, err)
	assert.NotEmpty(t, redirect.TransactionID)
	assert.Equal(t, "https://rc-epay.esewa.com.np/api/epay/main/v2/form", redirect.GatewayURL)

	form := redirect.FormHTML
	assert.Contains(t, form, `name="total_amount" value="2300"`)
	assert.Contains(t, form, `name="transaction_uuid" value="`+redirect.TransactionID+`"`)
	assert.Contains(t, form, `name="product_code" value="EPAYTEST"`)
	assert.Contains(t, form, `name="signed_field_names" value="total_amount,transaction_uuid,product_code"`)

	signature := Sign(2300, redirect.TransactionID, "EPAYTEST", "8gBm/:&EnhH.1/q")
	assert.Contains(t, form, `name="signature" value="`+signature+`"`)
}

func TestEsewaGateway_BuildRedirect_UniqueTransactionPerCall(t *testing.T) {
	gateway, err := NewEsewaGateway(testEsewaConfig())
	require.NoError(t, err)

	first, err := gateway.BuildRedirect(context.Background(), 500)
	require.NoError(t, err)
	second, err := gateway.BuildRedirect(context.Background(), 500)
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

func TestNewEsewaGateway_MissingConfig(t *testing.T) {
	_, err := NewEsewaGateway(&config.Config{})
	assert.Error(t, err)

	cfg := testEsewaConfig()
	cfg.Esewa.SecretKey = ""
	_, err = NewEsewaGateway(cfg)
	assert.Error(t, err)
}
