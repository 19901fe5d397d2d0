package shipment

import (
	"fmt"

	"customs/internal/pkg/errs"
)

// PaymentStatus tracks whether duties and fees have been settled.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
)

// ParsePaymentStatus converts "pending" or "paid" into a PaymentStatus.
func ParsePaymentStatus(code string) (PaymentStatus, error) {
	switch code {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a valid payment status", code),
		)
	}
}

// PaymentStatusFromBool maps the payment toggle to a PaymentStatus.
func PaymentStatusFromBool(paid bool) PaymentStatus {
	if paid {
		return PaymentPaid
	}
	return PaymentPending
}

func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	case PaymentUnknown:
		return "unknown"
	}
	return "unknown"
}

// IsPaid reports whether p is PaymentPaid.
func (p PaymentStatus) IsPaid() bool {
	return p == PaymentPaid
}
