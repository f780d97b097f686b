package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePaymentQR("txn-12345", 2300)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestQRCodeService_PayloadRoundTrip(t *testing.T) {
	payload, err := json.Marshal(PaymentQRData{
		TransactionID: "txn-12345",
		Amount:        2300,
		Type:          "payment",
	})
	require.NoError(t, err)

	data, err := ParsePaymentQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "txn-12345", data.TransactionID)
	assert.Equal(t, int64(2300), data.Amount)
	assert.Equal(t, "payment", data.Type)
}

func TestParsePaymentQR_WrongType(t *testing.T) {
	payload, err := json.Marshal(PaymentQRData{
		TransactionID: "txn-12345",
		Amount:        2300,
		Type:          "coupon",
	})
	require.NoError(t, err)

	_, err = ParsePaymentQR(string(payload))
	assert.Error(t, err)
}

func TestParsePaymentQR_MalformedPayload(t *testing.T) {
	_, err := ParsePaymentQR("not-json")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GeneratePaymentQR("txn-12345", 100)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
