package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created via
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

	// ErrInvalidTransition is wrapped around every rejected status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Details are the declared, user-supplied attributes of a package.
type Details struct {
	TrackingNumber string
	Customer       Customer
	Origin         string
	Carrier        string
	Items          []Item
	DeclaredValue  kernel.Money
	Notes          string
}

// Snapshot is a detached copy of the full package state. Adapters use it to
// persist, render and sync a package without reaching into the aggregate.
type Snapshot struct {
	ID                 kernel.UUID
	ImporterID         kernel.UUID
	Details            Details
	Fees               Fees
	Status             Status
	PaymentStatus      PaymentStatus
	ReceivedDate       time.Time
	CustomsClearedDate *time.Time
	DeliveredDate      *time.Time
	SyncPending        bool
	Version            int
}

// TransitionOutcome describes what a status change did.
type TransitionOutcome struct {
	From         Status
	To           Status
	Notification NotificationType
	// PaymentForced is true when the transition flipped payment from pending to paid.
	PaymentForced bool
}

// Package is the aggregate root of a shipment owned by one importer.
//
// Package follows these invariants:
//   - Must have valid package and importer identifiers and a tracking number
//   - Fees.Total() is customsDuty + vat
//   - deliveredDate is set if and only if status is Delivered
//   - customsClearedDate is set whenever status has reached CustomsCleared,
//     and never while Received or CustomsPending
//   - Mutated only through Transition and SetPaymentStatus
type Package struct {
	id                 kernel.UUID
	importerID         kernel.UUID
	details            Details
	fees               Fees
	status             Status
	paymentStatus      PaymentStatus
	receivedDate       time.Time
	customsClearedDate *time.Time
	deliveredDate      *time.Time
	syncPending        bool
	version            int
	persistedVersion   int

	isConstructed bool
}

// NewPackage registers a newly received package in Received status with
// payment pending.
//
// Example:
//
//	customer, _ := shipment.NewCustomer("Ana Ruiz", "+50688887777", "")
//	item, _ := shipment.NewItem("Sneakers", 2, tenDollars, "6404")
//	fees, _ := services.NewFeeCalculator().Calculate([]shipment.Item{item}, twentyDollars)
//	pkg, err := shipment.NewPackage(kernel.NewUUID(), importerID, shipment.Details{
//	    TrackingNumber: "1Z999AA10123456784",
//	    Customer:       customer,
//	    Items:          []shipment.Item{item},
//	    DeclaredValue:  twentyDollars,
//	}, fees, time.Now())
func NewPackage(
	id kernel.UUID,
	importerID kernel.UUID,
	details Details,
	fees Fees,
	receivedDate time.Time,
) (*Package, error) {
	p := &Package{
		fees:          fees,
		status:        Received,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setIDs(id, importerID),
		p.setDetails(details),
		p.setReceivedDate(receivedDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a package from persisted state, re-checking every
// invariant so corrupted rows are rejected rather than loaded.
func RestorePackage(s Snapshot) (*Package, error) {
	p := &Package{
		fees:               s.Fees,
		status:             s.Status,
		paymentStatus:      s.PaymentStatus,
		customsClearedDate: copyTime(s.CustomsClearedDate),
		deliveredDate:      copyTime(s.DeliveredDate),
		syncPending:        s.SyncPending,
		version:            s.Version,
		persistedVersion:   s.Version,
		isConstructed:      true,
	}

	if err := errors.Join(
		p.setIDs(s.ID, s.ImporterID),
		p.setDetails(s.Details),
		p.setReceivedDate(s.ReceivedDate),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		p.validateVersion(),
	); err != nil {
		return nil, err
	}

	if err := p.validateLifecycleDates(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the package was built through a constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) ImporterID() kernel.UUID {
	return p.importerID
}

func (p *Package) TrackingNumber() string {
	return p.details.TrackingNumber
}

func (p *Package) Customer() Customer {
	return p.details.Customer
}

// Items returns a copy of the declared line items.
func (p *Package) Items() []Item {
	return slices.Clone(p.details.Items)
}

func (p *Package) DeclaredValue() kernel.Money {
	return p.details.DeclaredValue
}

func (p *Package) Fees() Fees {
	return p.fees
}

func (p *Package) Status() Status {
	return p.status
}

func (p *Package) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

func (p *Package) ReceivedDate() time.Time {
	return p.receivedDate
}

// CustomsClearedDate returns nil until the package has cleared customs.
func (p *Package) CustomsClearedDate() *time.Time {
	return copyTime(p.customsClearedDate)
}

// DeliveredDate returns nil unless the package is delivered.
func (p *Package) DeliveredDate() *time.Time {
	return copyTime(p.deliveredDate)
}

// SyncPending reports whether the last external sheet sync failed.
func (p *Package) SyncPending() bool {
	return p.syncPending
}

// Version is the optimistic concurrency version of the current state. It is
// one above PersistedVersion once the package has been mutated.
func (p *Package) Version() int {
	return p.version
}

// PersistedVersion is the version the package was loaded with. Conditional
// updates match the stored row against it.
func (p *Package) PersistedVersion() int {
	return p.persistedVersion
}

// Snapshot returns a detached copy of the full state.
func (p *Package) Snapshot() Snapshot {
	details := p.details
	details.Items = slices.Clone(p.details.Items)

	return Snapshot{
		ID:                 p.id,
		ImporterID:         p.importerID,
		Details:            details,
		Fees:               p.fees,
		Status:             p.status,
		PaymentStatus:      p.paymentStatus,
		ReceivedDate:       p.receivedDate,
		CustomsClearedDate: copyTime(p.customsClearedDate),
		DeliveredDate:      copyTime(p.deliveredDate),
		SyncPending:        p.syncPending,
		Version:            p.version,
	}
}

// Transition moves the package to target and derives dates and payment from
// the transition table. Any valid status may be requested from any status,
// including the current one.
//
// Returns:
//   - the outcome, including the notification to send
//   - an error wrapping ErrInvalidTransition if target is not a valid status
//
// Example:
//
//	outcome, err := pkg.Transition(shipment.Delivered, time.Now())
//	// pkg.PaymentStatus() == shipment.PaymentPaid
//	// outcome.Notification == shipment.NotificationDelivered
func (p *Package) Transition(target Status, now time.Time) (TransitionOutcome, error) {
	if err := p.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	rule, err := RuleFor(target)
	if err != nil {
		return TransitionOutcome{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	outcome := TransitionOutcome{
		From:          p.status,
		To:            target,
		Notification:  rule.Notification,
		PaymentForced: rule.ForcePaid && !p.paymentStatus.IsPaid(),
	}

	rule.apply(p, now)
	p.status = target
	p.touch()

	return outcome, nil
}

// SetPaymentStatus overrides the payment state independently of status.
func (p *Package) SetPaymentStatus(status PaymentStatus) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	p.paymentStatus = status
	p.touch()
	return nil
}

func (p *Package) touch() {
	p.version = p.persistedVersion + 1
}

func (p *Package) setIDs(id, importerID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := importerID.Validate(); err != nil {
		return err
	}
	p.id = id
	p.importerID = importerID
	return nil
}

func (p *Package) setDetails(details Details) error {
	details.TrackingNumber = strings.TrimSpace(details.TrackingNumber)
	if details.TrackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if details.Customer.Name() == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	details.Origin = strings.TrimSpace(details.Origin)
	details.Carrier = strings.TrimSpace(details.Carrier)
	details.Items = slices.Clone(details.Items)

	p.details = details
	return nil
}

func (p *Package) setReceivedDate(receivedDate time.Time) error {
	if receivedDate.IsZero() {
		return errs.NewValueIsRequiredError("received date")
	}
	p.receivedDate = receivedDate
	return nil
}

func (p *Package) validateVersion() error {
	if p.version < 0 {
		return errs.NewValueIsOutOfRangeError("version", p.version, 0, "unbounded")
	}
	return nil
}

func (p *Package) validateLifecycleDates() error {
	if (p.deliveredDate != nil) != (p.status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivered date",
			fmt.Errorf("delivered date presence does not match status %s", p.status),
		)
	}

	if p.status.HasReachedClearance() && p.customsClearedDate == nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"customs cleared date",
			fmt.Errorf("status %s requires a clearance date", p.status),
		)
	}

	if (p.status == Received || p.status == CustomsPending) && p.customsClearedDate != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"customs cleared date",
			fmt.Errorf("status %s cannot have a clearance date", p.status),
		)
	}

	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
