package order

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderNumber generates ORD-<millis>-<9 char base36>, matching the receipt
// format customers already see. Collision resistance is best effort; there is
// no central allocator.
func NewOrderNumber() string {
	return newOrderNumberAt(time.Now())
}

func newOrderNumberAt(t time.Time) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(suffixAlphabet[rand.Intn(len(suffixAlphabet))])
	}
	return fmt.Sprintf("ORD-%d-%s", t.UnixMilli(), strings.ToUpper(b.String()))
}
