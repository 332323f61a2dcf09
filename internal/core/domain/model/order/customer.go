package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

const mobileNumberLength = 10

// Customer is the buyer's contact and payment identity captured at checkout.
type Customer struct {
	name         string
	address      string
	mobileNumber string
	upi          string

	guard guard.ConstructorGuard
}

// NewCustomer trims every field. Name and address are required, the mobile number
// must be exactly ten digits and the UPI handle is optional.
func NewCustomer(name, address, mobileNumber, upi string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setAddress(address),
		c.setMobileNumber(mobileNumber),
	); err != nil {
		return Customer{}, err
	}
	c.upi = strings.TrimSpace(upi)

	return c, nil
}

// RestoreCustomer rebuilds a stored customer without re-checking the checkout rules.
func RestoreCustomer(name, address, mobileNumber, upi string) Customer {
	return Customer{
		name:         name,
		address:      address,
		mobileNumber: mobileNumber,
		upi:          upi,
		guard:        guard.NewConstructorGuard(),
	}
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Address() string {
	return c.address
}

func (c Customer) MobileNumber() string {
	return c.mobileNumber
}

func (c Customer) UPI() string {
	return c.upi
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}

func (c *Customer) setMobileNumber(mobileNumber string) error {
	mobileNumber = strings.TrimSpace(mobileNumber)
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobile number")
	}
	if len(mobileNumber) != mobileNumberLength || strings.Trim(mobileNumber, "0123456789") != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"mobile number",
			fmt.Errorf("%q is not %d digits", mobileNumber, mobileNumberLength),
		)
	}
	c.mobileNumber = mobileNumber
	return nil
}
