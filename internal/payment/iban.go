// Package payment converts Czech bank account numbers to IBAN form for the
// payment screen. The conversion is CZ-specific: the BBAN layout and the
// country digits are hardwired and must not be reused for other countries
// without a proper ISO 13616 layout table.
package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidAccount is returned when the input is neither a Czech IBAN nor a
// parseable "[prefix-]number/bankCode" account string.
var ErrInvalidAccount = errors.New("invalid czech account number")

var (
	czIBANPattern  = regexp.MustCompile(`^CZ\d{22}$`)
	accountPattern = regexp.MustCompile(`^(?:(\d{1,6})-)?(\d{1,10})/(\d{4})$`)
)

// czCountryDigits is "CZ" rearranged as digits for the MOD 97-10 check
// (C=12, Z=35).
const czCountryDigits = "123500"

// ConvertToCZIBAN converts a Czech account string to IBAN form.
//
// Inputs already in IBAN form (after stripping spaces) pass through
// unchanged. Native "[prefix-]number/bankCode" notation is zero-padded into
// BBAN = bankCode(4) + prefix(6) + number(10) and prefixed with the computed
// ISO 7064 check digits. Anything else fails with ErrInvalidAccount.
func ConvertToCZIBAN(account string) (string, error) {
	stripped := strings.ReplaceAll(account, " ", "")

	if czIBANPattern.MatchString(stripped) {
		return stripped, nil
	}

	m := accountPattern.FindStringSubmatch(stripped)
	if m == nil {
		return "", ErrInvalidAccount
	}
	prefix, number, bankCode := m[1], m[2], m[3]

	bban := bankCode + leftPad(prefix, 6) + leftPad(number, 10)
	check := 98 - mod97(bban+czCountryDigits)
	return fmt.Sprintf("CZ%02d%s", check, bban), nil
}

// leftPad zero-pads s on the left to the given width.
func leftPad(s string, width int) string {
	return strings.Repeat("0", width-len(s)) + s
}

// mod97 computes the remainder of the decimal numeral mod 97 digit by digit,
// so arbitrarily long inputs never overflow.
func mod97(digits string) int {
	rem := 0
	for _, d := range digits {
		rem = (rem*10 + int(d-'0')) % 97
	}
	return rem
}
