package sms

import (
	"fmt"

	"customs/internal/core/domain/model/shipment"
)

// MessageFor renders the customer text for a notification.
func MessageFor(pkg shipment.Snapshot, notification shipment.NotificationType) string {
	tracking := pkg.Details.TrackingNumber

	switch notification {
	case shipment.NotificationCustomsCleared:
		if pkg.PaymentStatus.IsPaid() || pkg.Fees.Total().IsZero() {
			return fmt.Sprintf("Your package %s has cleared customs.", tracking)
		}
		return fmt.Sprintf("Your package %s has cleared customs. Duties and taxes due: %s.",
			tracking, pkg.Fees.Total())
	case shipment.NotificationReadyForPickup:
		return fmt.Sprintf("Your package %s is ready for pickup.", tracking)
	case shipment.NotificationDelivered:
		return fmt.Sprintf("Your package %s has been delivered. Thank you!", tracking)
	case shipment.NotificationNone:
	}
	return ""
}
