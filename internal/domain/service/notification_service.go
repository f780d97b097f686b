package service

import "context"

// NotificationService delivers push notifications to a shopper's device.
// It is optional infrastructure: when unconfigured the storefront simply
// skips notification sends.
type NotificationService interface {
	// SendSingleNotification sends a push notification to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
