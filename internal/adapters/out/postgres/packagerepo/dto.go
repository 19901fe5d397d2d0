// Package packagerepo persists the package aggregate with GORM.
// A package is one row in "packages" plus its immutable line items in
// "package_items". Money is stored as integer cents, statuses as their codes.
package packagerepo

import (
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// PackageDTO is the row layout of the packages table.
type PackageDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ImporterID         uuid.UUID   `gorm:"type:uuid;not null;index:idx_packages_importer_received,priority:1"`
	TrackingNumber     string      `gorm:"type:varchar(64);not null;index"`
	Customer           CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Origin             string      `gorm:"type:varchar(255)"`
	Carrier            string      `gorm:"type:varchar(255)"`
	Notes              string      `gorm:"type:text"`
	DeclaredValueCents int64       `gorm:"type:bigint;not null"`
	CustomsDutyCents   int64       `gorm:"type:bigint;not null"`
	VATCents           int64       `gorm:"column:vat_cents;type:bigint;not null"`
	TotalFeesCents     int64       `gorm:"type:bigint;not null"`
	Status             string      `gorm:"type:varchar(32);not null;index"`
	PaymentStatus      string      `gorm:"type:varchar(16);not null"`
	ReceivedDate       time.Time   `gorm:"not null;index:idx_packages_importer_received,priority:2"`
	CustomsClearedDate *time.Time
	DeliveredDate      *time.Time
	SyncPending        bool `gorm:"not null;default:false;index"`
	SyncAttemptedAt    *time.Time
	Version            int       `gorm:"not null;default:0"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
	Items              []ItemDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// CustomerDTO is embedded into the packages row.
type CustomerDTO struct {
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(20)"`
	Email string `gorm:"type:varchar(255)"`
}

// ItemDTO is one declared line item. Position keeps declaration order.
type ItemDTO struct {
	PackageID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"primaryKey"`
	Description    string    `gorm:"type:varchar(255);not null"`
	Quantity       int       `gorm:"not null"`
	UnitValueCents int64     `gorm:"type:bigint;not null"`
	HSCode         string    `gorm:"column:hs_code;type:varchar(10);not null"`
}

func (ItemDTO) TableName() string {
	return "package_items"
}

func fromDomain(p *shipment.Package) PackageDTO {
	s := p.Snapshot()
	id := s.ID.Bytes()

	items := make([]ItemDTO, 0, len(s.Details.Items))
	for i, item := range s.Details.Items {
		items = append(items, ItemDTO{
			PackageID:      id,
			Position:       i,
			Description:    item.Description(),
			Quantity:       item.Quantity(),
			UnitValueCents: item.UnitValue().Cents(),
			HSCode:         item.HSCode(),
		})
	}

	return PackageDTO{
		ID:             id,
		ImporterID:     s.ImporterID.Bytes(),
		TrackingNumber: s.Details.TrackingNumber,
		Customer: CustomerDTO{
			Name:  s.Details.Customer.Name(),
			Phone: s.Details.Customer.Phone(),
			Email: s.Details.Customer.Email(),
		},
		Origin:             s.Details.Origin,
		Carrier:            s.Details.Carrier,
		Notes:              s.Details.Notes,
		DeclaredValueCents: s.Details.DeclaredValue.Cents(),
		CustomsDutyCents:   s.Fees.CustomsDuty().Cents(),
		VATCents:           s.Fees.VAT().Cents(),
		TotalFeesCents:     s.Fees.Total().Cents(),
		Status:             s.Status.String(),
		PaymentStatus:      s.PaymentStatus.String(),
		ReceivedDate:       s.ReceivedDate,
		CustomsClearedDate: s.CustomsClearedDate,
		DeliveredDate:      s.DeliveredDate,
		SyncPending:        s.SyncPending,
		Version:            s.Version,
		Items:              items,
	}
}

// toDomain restores the aggregate, re-checking every invariant. Items must
// be sorted by Position.
func toDomain(dto PackageDTO) (*shipment.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	importerID, err := kernel.UUIDFromBytes(dto.ImporterID[:])
	if err != nil {
		return nil, err
	}

	customer, err := shipment.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Email)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitValue, valueErr := kernel.MoneyFromCents(itemDTO.UnitValueCents)
		if valueErr != nil {
			return nil, valueErr
		}

		item, itemErr := shipment.NewItem(itemDTO.Description, itemDTO.Quantity, unitValue, itemDTO.HSCode)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	declared, err := kernel.MoneyFromCents(dto.DeclaredValueCents)
	if err != nil {
		return nil, err
	}
	duty, err := kernel.MoneyFromCents(dto.CustomsDutyCents)
	if err != nil {
		return nil, err
	}
	vat, err := kernel.MoneyFromCents(dto.VATCents)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := shipment.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return shipment.RestorePackage(shipment.Snapshot{
		ID:         id,
		ImporterID: importerID,
		Details: shipment.Details{
			TrackingNumber: dto.TrackingNumber,
			Customer:       customer,
			Origin:         dto.Origin,
			Carrier:        dto.Carrier,
			Items:          items,
			DeclaredValue:  declared,
			Notes:          dto.Notes,
		},
		Fees:               shipment.NewFees(duty, vat),
		Status:             status,
		PaymentStatus:      paymentStatus,
		ReceivedDate:       dto.ReceivedDate,
		CustomsClearedDate: dto.CustomsClearedDate,
		DeliveredDate:      dto.DeliveredDate,
		SyncPending:        dto.SyncPending,
		Version:            dto.Version,
	})
}
