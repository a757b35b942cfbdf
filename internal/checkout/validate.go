package checkout

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"

	"github.com/treysweeney3/hunt-kitchen-sub000/internal/types"
)

var (
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ValidationError maps request fields to human readable problems.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid checkout request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ValidateAddress checks a US shipping or billing address. Field keys are prefixed with prefix.
func ValidateAddress(prefix string, a types.Address) map[string]string {
	errs := map[string]string{}
	if a.Name == "" {
		errs[prefix+".name"] = "name is required"
	}
	if a.Line1 == "" {
		errs[prefix+".line1"] = "street address is required"
	}
	if a.City == "" {
		errs[prefix+".city"] = "city is required"
	}
	if !statePattern.MatchString(a.State) {
		errs[prefix+".state"] = "state must be a 2-letter code"
	}
	if !zipPattern.MatchString(a.PostalCode) {
		errs[prefix+".postal_code"] = "ZIP code must be 5 digits or ZIP+4"
	}
	if a.Country != "US" {
		errs[prefix+".country"] = "only US addresses are supported"
	}
	return errs
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
