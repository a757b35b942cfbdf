// Package components holds small shared view pieces.
package components

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

const badgeBase = "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-medium bg-stone-100 text-stone-700"

var statusColors = map[string]string{
	"pending":    "bg-amber-100 text-amber-800",
	"confirmed":  "bg-sky-100 text-sky-800",
	"processing": "bg-indigo-100 text-indigo-800",
	"shipped":    "bg-emerald-100 text-emerald-800",
	"delivered":  "bg-green-100 text-green-800",
	"cancelled":  "bg-stone-200 text-stone-600",
	"refunded":   "bg-rose-100 text-rose-800",
}

// Class merges tailwind classes, later classes winning conflicts
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}

// StatusBadgeClass returns the badge classes for an order status
func StatusBadgeClass(status string) string {
	return Class(badgeBase, statusColors[status])
}

// ButtonClass returns the classes for a primary button, with optional overrides
func ButtonClass(extra ...string) string {
	return Class(append([]string{"rounded-md bg-emerald-800 px-4 py-2 text-sm font-semibold text-white hover:bg-emerald-700"}, extra...)...)
}
