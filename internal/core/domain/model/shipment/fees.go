package shipment

import "customs/internal/core/domain/model/kernel"

// Fees holds the computed customs charges of a package.
// The total is always derived, so totalFees == customsDuty + vat by construction.
type Fees struct {
	customsDuty kernel.Money
	vat         kernel.Money
}

func NewFees(customsDuty, vat kernel.Money) Fees {
	return Fees{customsDuty: customsDuty, vat: vat}
}

func (f Fees) CustomsDuty() kernel.Money {
	return f.customsDuty
}

func (f Fees) VAT() kernel.Money {
	return f.vat
}

// Total returns customsDuty + vat.
func (f Fees) Total() kernel.Money {
	return f.customsDuty.Add(f.vat)
}
