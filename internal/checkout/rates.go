package checkout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShippingRate is a flat-rate shipping option.
type ShippingRate struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	AmountCents int64  `yaml:"amount_cents" json:"amount_cents"`
	Estimate    string `yaml:"estimate" json:"estimate,omitempty"`
}

// RateTable is the static table of shipping options offered at checkout.
type RateTable struct {
	Rates []ShippingRate `yaml:"rates"`
}

func DefaultRateTable() *RateTable {
	return &RateTable{Rates: []ShippingRate{
		{ID: "standard", Label: "Standard Shipping", AmountCents: 599, Estimate: "5-7 business days"},
		{ID: "expedited", Label: "Expedited Shipping", AmountCents: 1299, Estimate: "2-3 business days"},
		{ID: "overnight", Label: "Overnight Shipping", AmountCents: 2499, Estimate: "1 business day"},
	}}
}

// LoadRateTable reads a YAML rate table. An empty path yields the default table.
func LoadRateTable(path string) (*RateTable, error) {
	if path == "" {
		return DefaultRateTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shipping rates: %w", err)
	}

	var table RateTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse shipping rates: %w", err)
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

func (t *RateTable) validate() error {
	if len(t.Rates) == 0 {
		return fmt.Errorf("shipping rate table is empty")
	}
	seen := map[string]bool{}
	for _, r := range t.Rates {
		if r.ID == "" || r.Label == "" {
			return fmt.Errorf("shipping rate needs an id and a label")
		}
		if r.AmountCents < 0 {
			return fmt.Errorf("shipping rate %s has a negative amount", r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate shipping rate %s", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

func (t *RateTable) Lookup(id string) (ShippingRate, bool) {
	for _, r := range t.Rates {
		if r.ID == id {
			return r, true
		}
	}
	return ShippingRate{}, false
}
