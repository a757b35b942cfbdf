package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/EasyPost/easypost-go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrackers struct {
	got *easypost.CreateTrackerOptions
	out *easypost.Tracker
	err error
}

func (f *fakeTrackers) CreateTrackerWithContext(_ context.Context, opts *easypost.CreateTrackerOptions) (*easypost.Tracker, error) {
	f.got = opts
	return f.out, f.err
}

func TestNormalizeCarrier(t *testing.T) {
	tests := map[string]string{
		"USPS":            "usps",
		"U.S.P.S.":        "usps",
		" ups ":           "ups",
		"FedEx Ground":    "fedex",
		"Federal Express": "fedex",
		"DHL Express":     "dhl",
		"OnTrac":          "ontrac",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCarrier(in), in)
	}
}

func TestTemplateURL(t *testing.T) {
	u, err := TemplateURL("UPS", "1Z 999")
	require.NoError(t, err)
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z+999", u)

	_, err = TemplateURL("pony express", "1")
	assert.ErrorIs(t, err, ErrUnknownCarrier)
}

func TestTracker_EasyPost(t *testing.T) {
	fake := &fakeTrackers{out: &easypost.Tracker{PublicURL: "https://track.easypost.com/abc"}}
	tr := &Tracker{client: fake}

	u, err := tr.TrackingURL(context.Background(), "fedex", "7777")
	require.NoError(t, err)
	assert.Equal(t, "https://track.easypost.com/abc", u)
	assert.Equal(t, "FedEx", fake.got.Carrier)
	assert.Equal(t, "7777", fake.got.TrackingCode)
}

func TestTracker_FallsBackToTemplate(t *testing.T) {
	tr := &Tracker{client: &fakeTrackers{err: errors.New("rate limited")}}
	u, err := tr.TrackingURL(context.Background(), "usps", "9400")
	require.NoError(t, err)
	assert.Equal(t, "https://tools.usps.com/go/TrackConfirmAction?tLabels=9400", u)

	tr = NewTracker("")
	assert.True(t, tr.IsUsingTemplates())
	u, err = tr.TrackingURL(context.Background(), "dhl", "JD01")
	require.NoError(t, err)
	assert.Contains(t, u, "tracking-id=JD01")

	_, err = tr.TrackingURL(context.Background(), "usps", " ")
	assert.Error(t, err)
}
