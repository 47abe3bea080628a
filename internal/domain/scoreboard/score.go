package scoreboard

import (
	"bytes"
	"encoding/json"
)

// Score holds a competitor score that upstream sends as a string or a number.
// Present is false when the field was absent, null, or of any other JSON type,
// so one malformed competitor never fails a whole scoreboard.
type Score struct {
	Value   string
	Present bool
}

// NewScore returns a present score.
func NewScore(v string) Score {
	return Score{Value: v, Present: true}
}

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Score{}
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = NewScore(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		*s = Score{}
		return nil
	}
	*s = NewScore(num.String())
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
