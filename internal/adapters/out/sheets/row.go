package sheets

import (
	"time"

	"customs/internal/core/domain/model/shipment"
)

const (
	dateLayout = "2006-01-02 15:04"
	lastColumn = "P"
)

// Header is the first row of a package sheet. Column A always holds the
// package ID and is the lookup key.
var Header = []string{
	"Package ID",
	"Tracking Number",
	"Customer",
	"Phone",
	"Origin",
	"Carrier",
	"Declared Value",
	"Customs Duty",
	"VAT",
	"Total Fees",
	"Status",
	"Payment",
	"Received",
	"Customs Cleared",
	"Delivered",
	"Notes",
}

// Row renders a snapshot in Header order. Equal snapshots render equal rows.
func Row(pkg shipment.Snapshot) []string {
	return []string{
		pkg.ID.String(),
		pkg.Details.TrackingNumber,
		pkg.Details.Customer.Name(),
		pkg.Details.Customer.Phone(),
		pkg.Details.Origin,
		pkg.Details.Carrier,
		pkg.Details.DeclaredValue.String(),
		pkg.Fees.CustomsDuty().String(),
		pkg.Fees.VAT().String(),
		pkg.Fees.Total().String(),
		pkg.Status.DisplayText(),
		pkg.PaymentStatus.String(),
		formatDate(&pkg.ReceivedDate),
		formatDate(pkg.CustomsClearedDate),
		formatDate(pkg.DeliveredDate),
		pkg.Details.Notes,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
