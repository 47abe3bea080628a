package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"ShortName", "shortName"},
		{"Location", "location"},
		{"Abbreviation", "abbreviation"},
		{"LogoURL", "logoUrl,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestSubtitlePrefersLocation(t *testing.T) {
	if got := (Team{Location: "Boston", Abbreviation: "BOS"}).Subtitle(); got != "Boston" {
		t.Fatalf("expected location, got %s", got)
	}
	if got := (Team{Abbreviation: "BOS"}).Subtitle(); got != "BOS" {
		t.Fatalf("expected abbreviation fallback, got %s", got)
	}
	if got := (Team{}).Subtitle(); got != "" {
		t.Fatalf("expected empty subtitle, got %s", got)
	}
}

func TestIndexByID(t *testing.T) {
	idx := Index([]Team{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}})
	if len(idx) != 2 || idx["2"].Name != "B" {
		t.Fatalf("unexpected index %+v", idx)
	}
}
