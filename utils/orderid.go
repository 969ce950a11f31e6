package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID produces a public order identifier of the form
// ORD-XXXXXXXXX. Clients may supply their own; this covers checkouts
// that do not.
func GenerateOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderIDAlphabet))))
		if err != nil {
			// crypto/rand failing is effectively fatal elsewhere too;
			// fall back to a position-based character.
			b[i] = orderIDAlphabet[i%len(orderIDAlphabet)]
			continue
		}
		b[i] = orderIDAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%s", string(b))
}
