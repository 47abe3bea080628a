package scoreboard

import (
	"encoding/json"
	"testing"
)

func TestScoreAcceptsStringAndNumber(t *testing.T) {
	var c struct {
		A Score `json:"a"`
		B Score `json:"b"`
		C Score `json:"c"`
		D Score `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":"101","b":98,"c":null}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.A.Present || c.A.Value != "101" {
		t.Fatalf("string score not decoded: %+v", c.A)
	}
	if !c.B.Present || c.B.Value != "98" {
		t.Fatalf("number score not decoded: %+v", c.B)
	}
	if c.C.Present || c.D.Present {
		t.Fatalf("expected null and missing scores to be absent: %+v %+v", c.C, c.D)
	}
}

func TestScoreTreatsUnsupportedValuesAsAbsent(t *testing.T) {
	for _, raw := range []string{`{"value":1}`, `[1,2]`, `true`} {
		s := NewScore("stale")
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			t.Fatalf("unexpected error for %s: %v", raw, err)
		}
		if s.Present {
			t.Fatalf("expected %s to decode as absent, got %+v", raw, s)
		}
	}
}

func TestScoreboardSurvivesMalformedCompetitorScore(t *testing.T) {
	payload := `{"events":[{"id":"g1","competitions":[{"competitors":[
		{"team":{"id":"1"},"score":{"value":3}},
		{"team":{"id":"2"},"score":"4"}
	]}]}]}`
	var board Scoreboard
	if err := json.Unmarshal([]byte(payload), &board); err != nil {
		t.Fatalf("expected scoreboard to decode, got %v", err)
	}
	comps := board.Events[0].Competitions[0].Competitors
	if comps[0].Score.Present {
		t.Fatalf("expected object score absent, got %+v", comps[0].Score)
	}
	if !comps[1].Score.Present || comps[1].Score.Value != "4" {
		t.Fatalf("expected sibling score kept, got %+v", comps[1].Score)
	}
}

func TestScoreMarshal(t *testing.T) {
	out, _ := json.Marshal(struct {
		A Score `json:"a"`
		B Score `json:"b"`
	}{A: NewScore("7")})
	if string(out) != `{"a":"7","b":null}` {
		t.Fatalf("unexpected json %s", out)
	}
}
