package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$15.99", FormatPrice(1599))
	assert.Equal(t, "$0.05", FormatPrice(5))
	assert.Equal(t, "-$2.50", FormatPrice(-250))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4.0))
	assert.Equal(t, "★★★★★", Stars(4.5))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int64]string{
		0:  "-",
		45: "45 min",
		60: "1 hr",
		75: "1 hr 15 min",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMinutes(in))
	}
}
