package shipment

// NotificationType is the customer-facing message a transition triggers.
// Only the three clearance milestones notify; NotificationNone means no message.
type NotificationType int

const (
	NotificationNone NotificationType = iota
	NotificationCustomsCleared
	NotificationReadyForPickup
	NotificationDelivered
)

// String returns the wire name, e.g. "ready_for_pickup", or "none".
func (n NotificationType) String() string {
	switch n {
	case NotificationCustomsCleared:
		return "customs_cleared"
	case NotificationReadyForPickup:
		return "ready_for_pickup"
	case NotificationDelivered:
		return "delivered"
	case NotificationNone:
		return "none"
	}
	return "none"
}

// IsNone reports whether no notification should be sent.
func (n NotificationType) IsNone() bool {
	return n == NotificationNone
}
