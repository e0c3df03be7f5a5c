package route

import (
	"fmt"
	"math/rand/v2"

	"supplyline/internal/pkg/errs"
)

// otpDigits is the length of a delivery confirmation code.
const otpDigits = 6

// ErrOTPIsNotConstructed indicates a DeliveryOTP was not created via
// GenerateOTP or OTPFromString.
var ErrOTPIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery OTP must be created via GenerateOTP or OTPFromString")

// DeliveryOTP is the one-time code issued when a stop reaches Arrived and
// required to confirm physical delivery. It is an immutable value object.
type DeliveryOTP struct {
	code string
}

// GenerateOTP issues a random six-digit confirmation code.
func GenerateOTP() DeliveryOTP {
	return DeliveryOTP{code: fmt.Sprintf("%06d", rand.IntN(1000000))}
}

// OTPFromString reconstructs an OTP from its persisted form.
// The code must be exactly six digits.
func OTPFromString(code string) (DeliveryOTP, error) {
	if len(code) != otpDigits {
		return DeliveryOTP{}, errs.NewValueIsInvalidErrorWithCause(
			"otp is invalid",
			fmt.Errorf("%q is not a %d-digit code", code, otpDigits),
		)
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			return DeliveryOTP{}, errs.NewValueIsInvalidErrorWithCause(
				"otp is invalid",
				fmt.Errorf("%q contains a non-digit character", code),
			)
		}
	}

	return DeliveryOTP{code: code}, nil
}

// String returns the code for transmission to the customer.
func (o DeliveryOTP) String() string {
	return o.code
}

// Matches reports whether the supplied code confirms this OTP.
func (o DeliveryOTP) Matches(code string) bool {
	return o.code != "" && o.code == code
}

// Validate checks the OTP was built through a constructor.
func (o DeliveryOTP) Validate() error {
	if o.code == "" {
		return ErrOTPIsNotConstructed
	}
	return nil
}
