package order

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sendit/internal/pkg/errs"
)

// trackingNumberPrefix identifies order tracking numbers to customers.
const trackingNumberPrefix = "SIT"

const (
	base36Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingRandomChars = 6
)

var trackingNumberPattern = regexp.MustCompile(`^SIT[0-9A-Z]+$`)

// TrackingNumber is the customer-facing identifier of a delivery order,
// distinct from the internal order id. The generator produces a candidate that
// is practically collision-resistant (millisecond timestamp plus randomness)
// but not guaranteed unique; the persistence layer enforces uniqueness with a
// unique index and callers must treat a duplicate-key error as a retryable
// collision.
type TrackingNumber string

// NewTrackingNumber generates a tracking number candidate of the form
// SIT<base36 millisecond timestamp><6 random base36 chars>, upper-cased.
func NewTrackingNumber() TrackingNumber {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	random := make([]byte, trackingRandomChars)
	for i := range random {
		random[i] = base36Alphabet[rand.IntN(len(base36Alphabet))] //nolint:gosec // collision resistance, not secrecy
	}

	return TrackingNumber(trackingNumberPrefix + timestamp + string(random))
}

// TrackingNumberFromString validates and converts a raw string, typically when
// reconstructing orders from persistence or parsing a tracking request.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	tn := TrackingNumber(s)
	if err := tn.Validate(); err != nil {
		return "", err
	}
	return tn, nil
}

// Validate checks that the tracking number matches SIT[0-9A-Z]+.
func (t TrackingNumber) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(string(t)) {
		return errs.NewValueIsInvalidError("trackingNumber")
	}
	return nil
}

// String returns the tracking number as a plain string.
func (t TrackingNumber) String() string {
	return string(t)
}
