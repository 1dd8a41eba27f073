// Package tracking issues customer-facing tracking numbers.
package tracking

import "math/rand/v2"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NumberLength is the fixed length of every tracking number.
const NumberLength = 10

// NewNumber returns a random tracking number: NumberLength characters drawn
// independently and uniformly from A-Z0-9.
//
// The generator performs no uniqueness check. Uniqueness is enforced by the
// booking store's unique index at insert time; on collision the caller
// retries with a fresh number.
func NewNumber() string {
	b := make([]byte, NumberLength)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
