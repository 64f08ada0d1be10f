package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCPU(t *testing.T) {
	err := CheckCPU()
	if HasFMA() {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, ErrNoFMA)
	}
}
