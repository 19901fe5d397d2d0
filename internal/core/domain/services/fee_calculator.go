package services

import (
	"math/big"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
)

const (
	// VATRateBasisPoints is the fixed 13% VAT applied to the duty-inclusive value.
	VATRateBasisPoints int64 = 1300

	// DefaultDutyRateBasisPoints applies to unclassified items and chapters
	// without a specific rate.
	DefaultDutyRateBasisPoints int64 = 1000

	basisPointsPerUnit int64 = 10_000
)

// getChapterDutyRates maps HS chapters to duty rates in basis points.
func getChapterDutyRates() map[string]int64 {
	return map[string]int64{
		"22": 3000, // beverages, spirits
		"24": 4000, // tobacco
		"30": 0,    // pharmaceutical products
		"49": 0,    // printed books
		"61": 2000, // knitted apparel
		"62": 2000, // woven apparel
		"64": 2000, // footwear
		"71": 2500, // jewellery
		"84": 500,  // machinery, computers
		"85": 500,  // electrical equipment, phones
		"95": 1500, // toys, games
	}
}

// FeeCalculator is a pure domain service computing customs duty and VAT.
//
// Algorithm:
//   - the dutiable base is the declared value; when nothing was declared it
//     falls back to the sum of item values
//   - each item's share of the base is proportional to its value and taxed at
//     its HS chapter rate (DefaultDutyRateBasisPoints when unclassified)
//   - items without any value split the base evenly
//   - duty is rounded half-up to cents once, then VAT is 13% of base + duty,
//     also rounded half-up
//
// Example:
//
//	// 2 x 10.00 unclassified, declared 20.00
//	fees, _ := services.NewFeeCalculator().Calculate(items, declared)
//	// duty 2.00, VAT 2.86 (13% of 22.00), total 4.86
type FeeCalculator struct{}

func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// Calculate returns the fees for the given items and declared value.
// An empty item list yields zero fees.
func (c FeeCalculator) Calculate(items []shipment.Item, declaredValue kernel.Money) (shipment.Fees, error) {
	if len(items) == 0 {
		return shipment.NewFees(kernel.Zero(), kernel.Zero()), nil
	}

	itemsTotal := kernel.Zero()
	for _, item := range items {
		itemsTotal = itemsTotal.Add(item.Value())
	}

	base := declaredValue
	if base.IsZero() {
		base = itemsTotal
	}

	duty, err := kernel.MoneyFromRat(c.dutyCents(items, itemsTotal, base))
	if err != nil {
		return shipment.Fees{}, err
	}

	vatCents := new(big.Rat).Mul(base.Add(duty).Rat(), big.NewRat(VATRateBasisPoints, basisPointsPerUnit))
	vat, err := kernel.MoneyFromRat(vatCents)
	if err != nil {
		return shipment.Fees{}, err
	}

	return shipment.NewFees(duty, vat), nil
}

// DutyRate returns the rate applied to an item, in basis points.
func (c FeeCalculator) DutyRate(item shipment.Item) int64 {
	if rate, ok := getChapterDutyRates()[item.HSChapter()]; ok {
		return rate
	}
	return DefaultDutyRateBasisPoints
}

func (c FeeCalculator) dutyCents(items []shipment.Item, itemsTotal, base kernel.Money) *big.Rat {
	duty := new(big.Rat)

	for _, item := range items {
		var share *big.Rat
		if itemsTotal.IsZero() {
			share = new(big.Rat).Quo(base.Rat(), big.NewRat(int64(len(items)), 1))
		} else {
			share = new(big.Rat).Mul(base.Rat(), new(big.Rat).Quo(item.Value().Rat(), itemsTotal.Rat()))
		}

		itemDuty := new(big.Rat).Mul(share, big.NewRat(c.DutyRate(item), basisPointsPerUnit))
		duty.Add(duty, itemDuty)
	}

	return duty
}
