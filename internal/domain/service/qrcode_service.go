package service

// QRCodeService renders scan-to-pay codes for payment handoffs.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code carrying the transaction id
	// and amount for the shopper to scan in the wallet app.
	GeneratePaymentQR(transactionID string, amount int64) ([]byte, error)
}
