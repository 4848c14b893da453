package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// randomSuffix returns a 12-character lowercase hex string derived from a
// random UUID.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// newMessageID builds a semi-random message identifier from a timestamp and
// a random suffix, e.g. "20180724041334-4db42f0dd97e".
func newMessageID(now time.Time) string {
	return now.Format("20060102030405") + "-" + randomSuffix()
}

// newPaymentInfoID builds a payment-information identifier from the
// initiator name (alphanumerics only, truncated to 22 characters) and a
// random suffix, e.g. "TestCreditor-8748725a0019".
func newPaymentInfoID(name string) string {
	var buf strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			buf.WriteRune(r)
		}
	}

	clean := buf.String()
	if len(clean) > 22 {
		clean = clean[:22]
	}

	return clean + "-" + randomSuffix()
}

// newEndToEndID returns a 32-character hex identifier, within the 35
// character limit of the EndToEndId element.
func newEndToEndID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
