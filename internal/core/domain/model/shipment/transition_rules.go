package shipment

import "time"

// TransitionRule describes everything derived from a requested target status.
// It is the single place mapping statuses to date stamps, payment coupling and
// notifications; the engine consults it once per transition.
type TransitionRule struct {
	// StampCustomsCleared sets customsClearedDate to now when it is not set yet.
	StampCustomsCleared bool
	// ClearCustomsCleared removes customsClearedDate (status before clearance).
	ClearCustomsCleared bool
	// StampDelivered sets deliveredDate to now when it is not set yet.
	StampDelivered bool
	// ClearDelivered removes deliveredDate (any status other than delivered).
	ClearDelivered bool
	// ForcePaid sets paymentStatus to paid (payment-on-delivery).
	ForcePaid bool
	// Notification is sent to the customer after the change is committed.
	Notification NotificationType
}

func getTransitionRules() map[Status]TransitionRule {
	//nolint:exhaustive // Unknown is never a valid target
	return map[Status]TransitionRule{
		Received: {
			ClearCustomsCleared: true,
			ClearDelivered:      true,
		},
		CustomsPending: {
			ClearCustomsCleared: true,
			ClearDelivered:      true,
		},
		CustomsCleared: {
			StampCustomsCleared: true,
			ClearDelivered:      true,
			Notification:        NotificationCustomsCleared,
		},
		ReadyPickup: {
			StampCustomsCleared: true,
			ClearDelivered:      true,
			Notification:        NotificationReadyForPickup,
		},
		Delivered: {
			StampCustomsCleared: true,
			StampDelivered:      true,
			ForcePaid:           true,
			Notification:        NotificationDelivered,
		},
		OnHold: {
			ClearDelivered: true,
		},
	}
}

// RuleFor returns the rule for a target status.
//
// Returns a *errs.ValueIsInvalidError if target is not a valid status.
func RuleFor(target Status) (TransitionRule, error) {
	if err := target.Validate(); err != nil {
		return TransitionRule{}, err
	}
	return getTransitionRules()[target], nil
}

// NotificationFor returns the notification a transition to target triggers,
// NotificationNone for non-notifying or invalid statuses.
func NotificationFor(target Status) NotificationType {
	return getTransitionRules()[target].Notification
}

// apply derives the new dates and payment state. Existing stamps are kept so
// repeating a transition does not move its date.
func (r TransitionRule) apply(p *Package, now time.Time) {
	if r.ClearCustomsCleared {
		p.customsClearedDate = nil
	}
	if r.StampCustomsCleared && p.customsClearedDate == nil {
		stamp := now
		p.customsClearedDate = &stamp
	}

	if r.ClearDelivered {
		p.deliveredDate = nil
	}
	if r.StampDelivered && p.deliveredDate == nil {
		stamp := now
		p.deliveredDate = &stamp
	}

	if r.ForcePaid {
		p.paymentStatus = PaymentPaid
	}
}
