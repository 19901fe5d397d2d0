// Package queries contains read-only operations. Handlers query the database
// directly through GORM and return flat views, bypassing the aggregates.
package queries

import (
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// PackageView is the read model of a package.
type PackageView struct {
	ID                 kernel.UUID
	ImporterID         kernel.UUID
	TrackingNumber     string
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	Origin             string
	Carrier            string
	Notes              string
	Items              []ItemView
	DeclaredValue      kernel.Money
	CustomsDuty        kernel.Money
	VAT                kernel.Money
	TotalFees          kernel.Money
	Status             shipment.Status
	PaymentStatus      shipment.PaymentStatus
	ReceivedDate       time.Time
	CustomsClearedDate *time.Time
	DeliveredDate      *time.Time
	SyncPending        bool
	Version            int
}

type ItemView struct {
	Description string
	Quantity    int
	UnitValue   kernel.Money
	HSCode      string
}

// PackageViewFromSnapshot renders a committed aggregate snapshot in the same
// shape the queries return.
func PackageViewFromSnapshot(s shipment.Snapshot) PackageView {
	items := make([]ItemView, 0, len(s.Details.Items))
	for _, item := range s.Details.Items {
		items = append(items, ItemView{
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitValue:   item.UnitValue(),
			HSCode:      item.HSCode(),
		})
	}

	return PackageView{
		ID:                 s.ID,
		ImporterID:         s.ImporterID,
		TrackingNumber:     s.Details.TrackingNumber,
		CustomerName:       s.Details.Customer.Name(),
		CustomerPhone:      s.Details.Customer.Phone(),
		CustomerEmail:      s.Details.Customer.Email(),
		Origin:             s.Details.Origin,
		Carrier:            s.Details.Carrier,
		Notes:              s.Details.Notes,
		Items:              items,
		DeclaredValue:      s.Details.DeclaredValue,
		CustomsDuty:        s.Fees.CustomsDuty(),
		VAT:                s.Fees.VAT(),
		TotalFees:          s.Fees.Total(),
		Status:             s.Status,
		PaymentStatus:      s.PaymentStatus,
		ReceivedDate:       s.ReceivedDate,
		CustomsClearedDate: s.CustomsClearedDate,
		DeliveredDate:      s.DeliveredDate,
		SyncPending:        s.SyncPending,
		Version:            s.Version,
	}
}

const packageColumns = `
	id,
	importer_id,
	tracking_number,
	customer_name,
	customer_phone,
	customer_email,
	origin,
	carrier,
	notes,
	declared_value_cents,
	customs_duty_cents,
	vat_cents,
	total_fees_cents,
	status,
	payment_status,
	received_date,
	customs_cleared_date,
	delivered_date,
	sync_pending,
	version`

type packageRow struct {
	ID                 uuid.UUID
	ImporterID         uuid.UUID
	TrackingNumber     string
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	Origin             string
	Carrier            string
	Notes              string
	DeclaredValueCents int64
	CustomsDutyCents   int64
	VATCents           int64 `gorm:"column:vat_cents"`
	TotalFeesCents     int64
	Status             string
	PaymentStatus      string
	ReceivedDate       time.Time
	CustomsClearedDate *time.Time
	DeliveredDate      *time.Time
	SyncPending        bool
	Version            int
}

type itemRow struct {
	Description    string
	Quantity       int
	UnitValueCents int64
	HSCode         string `gorm:"column:hs_code"`
}

func (r packageRow) toView() (PackageView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return PackageView{}, err
	}
	importerID, err := kernel.UUIDFromBytes(r.ImporterID[:])
	if err != nil {
		return PackageView{}, err
	}
	status, err := shipment.ParseStatus(r.Status)
	if err != nil {
		return PackageView{}, err
	}
	paymentStatus, err := shipment.ParsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return PackageView{}, err
	}

	var amounts [4]kernel.Money
	for i, cents := range []int64{r.DeclaredValueCents, r.CustomsDutyCents, r.VATCents, r.TotalFeesCents} {
		if amounts[i], err = kernel.MoneyFromCents(cents); err != nil {
			return PackageView{}, err
		}
	}

	return PackageView{
		ID:                 id,
		ImporterID:         importerID,
		TrackingNumber:     r.TrackingNumber,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		Origin:             r.Origin,
		Carrier:            r.Carrier,
		Notes:              r.Notes,
		DeclaredValue:      amounts[0],
		CustomsDuty:        amounts[1],
		VAT:                amounts[2],
		TotalFees:          amounts[3],
		Status:             status,
		PaymentStatus:      paymentStatus,
		ReceivedDate:       r.ReceivedDate,
		CustomsClearedDate: r.CustomsClearedDate,
		DeliveredDate:      r.DeliveredDate,
		SyncPending:        r.SyncPending,
		Version:            r.Version,
	}, nil
}

func (r itemRow) toView() (ItemView, error) {
	unitValue, err := kernel.MoneyFromCents(r.UnitValueCents)
	if err != nil {
		return ItemView{}, err
	}

	return ItemView{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitValue:   unitValue,
		HSCode:      r.HSCode,
	}, nil
}
