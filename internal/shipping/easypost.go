// Package shipping resolves public tracking pages for shipped orders.
package shipping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/EasyPost/easypost-go/v5"
)

var ErrUnknownCarrier = errors.New("unknown carrier")

// carrierTemplates map a normalized carrier name to its public tracking page.
var carrierTemplates = map[string]string{
	"usps":  "https://tools.usps.com/go/TrackConfirmAction?tLabels=%s",
	"ups":   "https://www.ups.com/track?tracknum=%s",
	"fedex": "https://www.fedex.com/fedextrack/?trknbr=%s",
	"dhl":   "https://www.dhl.com/us-en/home/tracking/tracking-express.html?tracking-id=%s",
}

// easypostCarriers are the carrier codes EasyPost expects.
var easypostCarriers = map[string]string{
	"usps":  "USPS",
	"ups":   "UPS",
	"fedex": "FedEx",
	"dhl":   "DHLExpress",
}

// NormalizeCarrier folds common spellings ("U.S.P.S.", "FedEx Ground") to a key.
func NormalizeCarrier(carrier string) string {
	c := strings.ToLower(strings.TrimSpace(carrier))
	c = strings.NewReplacer(".", "", " ", "", "-", "").Replace(c)
	switch {
	case strings.HasPrefix(c, "usps"), c == "postal", c == "uspostalservice":
		return "usps"
	case strings.HasPrefix(c, "ups"):
		return "ups"
	case strings.HasPrefix(c, "fedex"), strings.HasPrefix(c, "federalexpress"):
		return "fedex"
	case strings.HasPrefix(c, "dhl"):
		return "dhl"
	}
	return c
}

// TemplateURL builds a tracking URL from the carrier's public page.
func TemplateURL(carrier, trackingNumber string) (string, error) {
	tmpl, ok := carrierTemplates[NormalizeCarrier(carrier)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCarrier, carrier)
	}
	return fmt.Sprintf(tmpl, url.QueryEscape(strings.TrimSpace(trackingNumber))), nil
}

type trackerCreator interface {
	CreateTrackerWithContext(ctx context.Context, opts *easypost.CreateTrackerOptions) (*easypost.Tracker, error)
}

// Tracker registers shipments with EasyPost and returns the tracker's public page,
// falling back to the carrier's own page when EasyPost is not configured or fails.
type Tracker struct {
	client trackerCreator
}

func NewTracker(apiKey string) *Tracker {
	if apiKey == "" {
		return &Tracker{}
	}
	return &Tracker{client: easypost.New(apiKey)}
}

func (t *Tracker) IsUsingTemplates() bool {
	return t.client == nil
}

func (t *Tracker) TrackingURL(ctx context.Context, carrier, trackingNumber string) (string, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return "", fmt.Errorf("tracking number is required")
	}

	if t.client != nil {
		opts := &easypost.CreateTrackerOptions{TrackingCode: trackingNumber}
		if code, ok := easypostCarriers[NormalizeCarrier(carrier)]; ok {
			opts.Carrier = code
		}
		tracker, err := t.client.CreateTrackerWithContext(ctx, opts)
		if err == nil && tracker != nil && tracker.PublicURL != "" {
			return tracker.PublicURL, nil
		}
		if err != nil {
			slog.Warn("easypost tracker failed, using carrier page", "error", err, "carrier", carrier)
		}
	}

	return TemplateURL(carrier, trackingNumber)
}
