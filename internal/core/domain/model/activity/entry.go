// Package activity provides the append-only audit entries written for every
// package state change.
package activity

import (
	"errors"
	"strings"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/errs"
)

const (
	MessagePackageReceived = "Package received"
	MessagePaymentReceived = "Payment received"
	MessagePaymentPending  = "Payment marked as pending"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is an immutable audit record. It has no mutators; the store only
// inserts entries and never updates or deletes them.
type Entry struct {
	id        kernel.UUID
	packageID kernel.UUID
	action    string
	createdAt time.Time

	isConstructed bool
}

// NewEntry validates and creates an audit entry.
func NewEntry(id, packageID kernel.UUID, action string, createdAt time.Time) (Entry, error) {
	e := Entry{isConstructed: true}

	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if err := packageID.Validate(); err != nil {
		return Entry{}, err
	}

	action = strings.TrimSpace(action)
	if action == "" {
		return Entry{}, errs.NewValueIsRequiredError("activity action")
	}
	if createdAt.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("activity timestamp")
	}

	e.id = id
	e.packageID = packageID
	e.action = action
	e.createdAt = createdAt
	return e, nil
}

func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) PackageID() kernel.UUID {
	return e.packageID
}

func (e Entry) Action() string {
	return e.action
}

func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

// StatusChangedMessage returns the action text for a status transition,
// e.g. "Status changed to Ready for Pickup".
func StatusChangedMessage(status shipment.Status) string {
	return "Status changed to " + status.DisplayText()
}

// PaymentMessage returns the action text for a payment toggle.
func PaymentMessage(status shipment.PaymentStatus) string {
	if status.IsPaid() {
		return MessagePaymentReceived
	}
	return MessagePaymentPending
}
