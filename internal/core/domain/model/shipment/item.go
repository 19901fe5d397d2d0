package shipment

import (
	"fmt"
	"regexp"
	"strings"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"
)

const maxItemQuantity = 100_000

var hsCodePattern = regexp.MustCompile(`^[0-9]{2,10}$`)

// Item is a declared line item of a package.
type Item struct {
	description string
	quantity    int
	unitValue   kernel.Money
	hsCode      string
}

// NewItem validates and creates a line item.
//
// Parameters:
//   - description: what the item is (required)
//   - quantity: number of units, 1..100000
//   - unitValue: declared value of one unit
//   - hsCode: optional Harmonized System code, 2 to 10 digits (dots and spaces are stripped)
func NewItem(description string, quantity int, unitValue kernel.Money, hsCode string) (Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, errs.NewValueIsRequiredError("item description")
	}

	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}

	hsCode = strings.NewReplacer(".", "", " ", "").Replace(hsCode)
	if hsCode != "" && !hsCodePattern.MatchString(hsCode) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item hs code", fmt.Errorf("%q is not 2-10 digits", hsCode))
	}

	return Item{
		description: description,
		quantity:    quantity,
		unitValue:   unitValue,
		hsCode:      hsCode,
	}, nil
}

func (i Item) Description() string {
	return i.description
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitValue() kernel.Money {
	return i.unitValue
}

func (i Item) HSCode() string {
	return i.hsCode
}

// HSChapter returns the two-digit chapter of the HS code, or "" when unclassified.
func (i Item) HSChapter() string {
	if len(i.hsCode) < 2 {
		return ""
	}
	return i.hsCode[:2]
}

// Value returns quantity * unitValue.
func (i Item) Value() kernel.Money {
	return i.unitValue.Times(i.quantity)
}
