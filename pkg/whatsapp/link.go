package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkBuilder constructs wa.me deep links pre-filled with a message. The
// link is fire-and-forget: opening it hands off to the messaging app, there
// is no delivery confirmation.
type LinkBuilder struct {
	CountryCode string
}

func NewLinkBuilder(countryCode string) *LinkBuilder {
	return &LinkBuilder{CountryCode: countryCode}
}

// NormalizePhone strips everything but digits and prefixes the country code
// when the number looks like a bare 10-digit local number.
func (b *LinkBuilder) NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if len(number) == 10 {
		number = b.CountryCode + number
	}
	return number
}

// Link builds the share URL for a phone number and message text.
func (b *LinkBuilder) Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.NormalizePhone(phone), url.QueryEscape(message))
}

// InvoiceMessage is the share text sent with a hosted invoice link.
func InvoiceMessage(shopName, customerName, ref string, balanceDue float64, publicURL string) string {
	return fmt.Sprintf("*INVOICE: %s*\n\nHello %s,\nHere is your receipt #%s.\nAmount Due: ₹%.0f\n\n📄 *View Invoice:* \n%s",
		shopName, customerName, ref, balanceDue, publicURL)
}

// FallbackMessage is used when the invoice could not be uploaded and the
// operator attaches the document manually.
func FallbackMessage(shopName, customerName, ref string) string {
	return fmt.Sprintf("*INVOICE: %s*\n\nHello %s,\nPlease find your invoice attached.\nReceipt #%s",
		shopName, customerName, ref)
}
