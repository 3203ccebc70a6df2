package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1403), toMinorUnits(14.03))
	assert.Equal(t, int64(325), toMinorUnits(3.25))
	assert.Equal(t, int64(0), toMinorUnits(0))
	// 0.1+0.2 style float noise still lands on the right cent.
	assert.Equal(t, int64(30), toMinorUnits(0.1+0.2))
}
