// Package selection enforces how many leagues and teams a user may pick.
package selection

import (
	"errors"
	"fmt"
)

// Default bounds shared by both scopes.
const (
	DefaultMin = 1
	DefaultMax = 5
)

// Scope names what is being selected and its cardinality bounds.
type Scope struct {
	// Name is the display name used in messages, e.g. "NBA".
	Name string
	// Noun is the plural of what is selected, e.g. "leagues" or "teams".
	Noun string
	Min  int
	Max  int
}

// LeagueScope bounds the whole-catalog league selection.
func LeagueScope() Scope {
	return Scope{Noun: "leagues", Min: DefaultMin, Max: DefaultMax}
}

// TeamScope bounds the team selection inside one league.
func TeamScope(leagueName string) Scope {
	return Scope{Name: leagueName, Noun: "teams", Min: DefaultMin, Max: DefaultMax}
}

// Message is the inline feedback shown when the scope's bounds are violated.
func (s Scope) Message() string {
	if s.Name == "" {
		return fmt.Sprintf("Please choose between %d and %d %s to continue.", s.Min, s.Max, s.Noun)
	}
	return fmt.Sprintf("Please select between %d and %d %s for %s.", s.Min, s.Max, s.Noun, s.Name)
}

// Option is one checkbox in a selection group.
type Option struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle,omitempty"`
	Checked  bool   `json:"checked"`
	Disabled bool   `json:"disabled"`
}

// Enforce recounts checked options. At or above Max every unchecked option is
// disabled, below Max every option is enabled again. It is idempotent.
func Enforce(scope Scope, options []Option) {
	full := CountChecked(options) >= scope.Max
	for i := range options {
		options[i].Disabled = full && !options[i].Checked
	}
}

// Toggle applies a checkbox change and re-enforces the limit.
// A disabled option cannot be checked. It reports whether the option exists.
func Toggle(scope Scope, options []Option, id string, checked bool) bool {
	found := false
	for i := range options {
		if options[i].ID != id {
			continue
		}
		found = true
		if checked && options[i].Disabled {
			break
		}
		options[i].Checked = checked
		break
	}
	Enforce(scope, options)
	return found
}

// CountChecked returns the number of checked options.
func CountChecked(options []Option) int {
	n := 0
	for _, o := range options {
		if o.Checked {
			n++
		}
	}
	return n
}

// CheckedIDs returns checked option ids in display order.
func CheckedIDs(options []Option) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		if o.Checked {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Validate checks the submitted count against the scope's bounds.
func Validate(scope Scope, checkedIDs []string) error {
	if n := len(checkedIDs); n < scope.Min || n > scope.Max {
		return &ValidationError{Scope: scope, Count: n}
	}
	return nil
}

// ValidationError reports a selection outside its scope's bounds.
type ValidationError struct {
	Scope Scope
	Count int
}

func (e *ValidationError) Error() string {
	return e.Scope.Message()
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
