package label

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Fact is a single nutrition entry.
type Fact struct {
	Key   string
	Value string
}

func (f Fact) String() string {
	return f.Key + ": " + f.Value
}

// Nutrition keeps facts in the order they were submitted.
type Nutrition []Fact

// Lines renders each fact as "key: value".
func (n Nutrition) Lines() []string {
	out := make([]string, len(n))
	for i, f := range n {
		out[i] = f.String()
	}
	return out
}

var errNotObject = errors.New("nutrition info is not a JSON object")

// ParseNutrition reads a JSON object of nutrition facts. Anything that is
// not a JSON object is kept verbatim under the "info" key. Empty input yields
// no facts.
func ParseNutrition(raw string) Nutrition {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	facts, err := parseFacts(raw)
	if err != nil {
		return Nutrition{{Key: "info", Value: raw}}
	}
	return facts
}

func parseFacts(raw string) (Nutrition, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	facts := Nutrition{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		// A repeated key keeps its first position and its last value.
		if i, dup := index[key]; dup {
			facts[i].Value = factValue(value)
			continue
		}
		index[key] = len(facts)
		facts = append(facts, Fact{Key: key, Value: factValue(value)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after nutrition object")
	}
	return facts, nil
}

func factValue(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}
