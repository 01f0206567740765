package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// NotificationKind identifies the business event a notification describes.
type NotificationKind string

const (
	NotificationOrderStatusChanged NotificationKind = "order_status_changed"
	NotificationBillGenerated      NotificationKind = "bill_generated"
	NotificationPaymentRecorded    NotificationKind = "payment_recorded"
	NotificationPaymentReminder    NotificationKind = "payment_reminder"
)

// Notification is the outbound message sent to customers after a state
// change. BillID is zero for order-only events.
type Notification struct {
	Kind    NotificationKind
	OrderID kernel.UUID
	BillID  kernel.UUID
	Detail  string
}

// NotificationPublisher delivers notifications to the outside world.
//
// Publishing happens strictly after the owning transaction commits and is
// best effort: callers log a failed publish and move on, they never roll
// back committed state because of it.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
