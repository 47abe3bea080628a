package selection

import (
	"fmt"
	"testing"
)

func options(n int, checked ...int) []Option {
	out := make([]Option, n)
	for i := range out {
		out[i] = Option{ID: fmt.Sprintf("o%d", i), Label: fmt.Sprintf("Option %d", i)}
	}
	for _, idx := range checked {
		out[idx].Checked = true
	}
	return out
}

func TestEnforceDisablesUncheckedAtMax(t *testing.T) {
	scope := LeagueScope()
	opts := options(7, 0, 1, 2, 3, 4)
	Enforce(scope, opts)
	for i, o := range opts {
		if o.Checked && o.Disabled {
			t.Fatalf("checked option %d must stay enabled", i)
		}
		if !o.Checked && !o.Disabled {
			t.Fatalf("unchecked option %d must be disabled at max", i)
		}
	}
}

func TestEnforceReenablesBelowMaxAndIsIdempotent(t *testing.T) {
	scope := LeagueScope()
	opts := options(7, 0, 1, 2, 3, 4)
	Enforce(scope, opts)
	opts[4].Checked = false
	Enforce(scope, opts)
	first := append([]Option(nil), opts...)
	Enforce(scope, opts)
	for i := range opts {
		if opts[i].Disabled {
			t.Fatalf("option %d should be enabled below max", i)
		}
		if opts[i] != first[i] {
			t.Fatalf("enforce should be idempotent")
		}
	}
}

func TestToggleCannotCheckDisabledOption(t *testing.T) {
	scope := TeamScope("NBA")
	opts := options(6, 0, 1, 2, 3)
	Enforce(scope, opts)

	if !Toggle(scope, opts, "o4", true) {
		t.Fatalf("expected option to be found")
	}
	if !opts[5].Disabled {
		t.Fatalf("expected sixth option disabled after reaching max")
	}
	Toggle(scope, opts, "o5", true)
	if opts[5].Checked {
		t.Fatalf("disabled option must not become checked")
	}
	if CountChecked(opts) > scope.Max {
		t.Fatalf("count exceeded max")
	}

	Toggle(scope, opts, "o0", false)
	if opts[5].Disabled {
		t.Fatalf("expected options re-enabled after unchecking")
	}
	if Toggle(scope, opts, "missing", true) {
		t.Fatalf("expected unknown id to be reported")
	}
}

func TestValidateBounds(t *testing.T) {
	scope := LeagueScope()
	if err := Validate(scope, []string{"a"}); err != nil {
		t.Fatalf("expected one to be valid, got %v", err)
	}
	if err := Validate(scope, []string{"a", "b", "c", "d", "e"}); err != nil {
		t.Fatalf("expected five to be valid, got %v", err)
	}

	err := Validate(scope, nil)
	vErr, ok := AsValidationError(err)
	if !ok || vErr.Count != 0 {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Please choose between 1 and 5 leagues to continue." {
		t.Fatalf("unexpected league message %q", err.Error())
	}

	err = Validate(TeamScope("NHL"), []string{"1", "2", "3", "4", "5", "6"})
	if err == nil || err.Error() != "Please select between 1 and 5 teams for NHL." {
		t.Fatalf("unexpected team message %v", err)
	}
}

func TestCheckedIDsPreservesOrder(t *testing.T) {
	opts := options(4, 3, 1)
	ids := CheckedIDs(opts)
	if len(ids) != 2 || ids[0] != "o1" || ids[1] != "o3" {
		t.Fatalf("unexpected ids %v", ids)
	}
}
