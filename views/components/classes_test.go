package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadgeClass(t *testing.T) {
	cls := StatusBadgeClass("shipped")
	assert.Contains(t, cls, "bg-emerald-100")
	assert.NotContains(t, cls, "bg-stone-100", "status colour replaces the default")

	assert.Contains(t, StatusBadgeClass("unknown"), "bg-stone-100")
}

func TestButtonClass(t *testing.T) {
	cls := ButtonClass("px-6")
	assert.Contains(t, strings.Fields(cls), "px-6")
	assert.NotContains(t, strings.Fields(cls), "px-4")
}
