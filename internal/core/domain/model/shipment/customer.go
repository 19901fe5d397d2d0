package shipment

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"customs/internal/pkg/errs"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Customer is the recipient of a package and of its SMS notifications.
type Customer struct {
	name  string
	phone string
	email string
}

// NewCustomer validates and creates a customer.
// The phone is normalized by dropping spaces, dashes, dots and parentheses.
// Email is optional.
func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	phone = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(phone)
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if !phonePattern.MatchString(phone) {
		return Customer{}, errs.NewValueIsInvalidErrorWithCause("customer phone", fmt.Errorf("%q is not a phone number", phone))
	}

	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Customer{}, errs.NewValueIsInvalidErrorWithCause("customer email", err)
		}
	}

	return Customer{name: name, phone: phone, email: email}, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

// Email returns the email address, "" when not provided.
func (c Customer) Email() string {
	return c.email
}
