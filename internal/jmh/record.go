// Package jmh loads the JSON result files written by the JMH harness.
package jmh

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Missing is the placeholder text used for absent fields.
const Missing = "N/A"

// Record is one measured benchmark invocation. Decoding never fails on a
// field of the wrong type: scalars keep their raw text and anything that is
// not an object where one is expected decodes as empty.
type Record struct {
	Benchmark     string
	Mode          string
	Params        Params
	PrimaryMetric PrimaryMetric
}

// PrimaryMetric holds the score of a record.
type PrimaryMetric struct {
	Score            Value
	ScoreError       Value
	ScoreUnit        string
	ScorePercentiles Percentiles
}

type wireRecord struct {
	Benchmark     json.RawMessage `json:"benchmark"`
	Mode          json.RawMessage `json:"mode"`
	Params        json.RawMessage `json:"params"`
	PrimaryMetric json.RawMessage `json:"primaryMetric"`
}

type wireMetric struct {
	Score            json.RawMessage `json:"score"`
	ScoreError       json.RawMessage `json:"scoreError"`
	ScoreUnit        json.RawMessage `json:"scoreUnit"`
	ScorePercentiles json.RawMessage `json:"scorePercentiles"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	rec := Record{
		Benchmark: fieldText(w.Benchmark),
		Mode:      fieldText(w.Mode),
	}
	if err := rec.Params.UnmarshalJSON(w.Params); err != nil {
		return err
	}
	if err := rec.PrimaryMetric.UnmarshalJSON(w.PrimaryMetric); err != nil {
		return err
	}
	*r = rec
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PrimaryMetric) UnmarshalJSON(data []byte) error {
	*m = PrimaryMetric{}
	if !isObject(data) {
		return nil
	}
	var w wireMetric
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := m.Score.UnmarshalJSON(w.Score); err != nil {
		return err
	}
	if err := m.ScoreError.UnmarshalJSON(w.ScoreError); err != nil {
		return err
	}
	m.ScoreUnit = fieldText(w.ScoreUnit)
	return m.ScorePercentiles.UnmarshalJSON(w.ScorePercentiles)
}

// ID returns the parsed benchmark identifier.
func (r Record) ID() Identifier {
	return ParseIdentifier(r.Benchmark)
}

func (r *Record) normalize() {
	if r.Benchmark == "" {
		r.Benchmark = Missing
	}
	if r.Mode == "" {
		r.Mode = Missing
	}
	if r.PrimaryMetric.ScoreUnit == "" {
		r.PrimaryMetric.ScoreUnit = Missing
	}
}

// Value is a JSON scalar that is usually a number. Anything that does not
// parse as a finite number is kept as raw text so it can be shown as-is.
type Value struct {
	raw     string
	num     float64
	numeric bool
	present bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{
		raw:     strconv.FormatFloat(f, 'g', -1, 64),
		num:     f,
		numeric: !math.IsNaN(f) && !math.IsInf(f, 0),
		present: true,
	}
}

// Text returns a Value holding s; it is numeric when s parses as a finite number.
func Text(s string) Value {
	v := Value{raw: s, present: true}
	v.num, v.numeric = parseFinite(s)
	return v
}

// Float returns the numeric value and whether there is one.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// String returns the raw text, or Missing for absent values.
func (v Value) String() string {
	if !v.present {
		return Missing
	}
	return v.raw
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = Value{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	*v = Text(string(data))
	return nil
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Param is one benchmark parameter binding.
type Param struct {
	Name  string
	Value string
}

// Params keeps parameters in the order they appear in the input.
type Params []Param

// UnmarshalJSON implements json.Unmarshaler.
func (p *Params) UnmarshalJSON(data []byte) error {
	*p = nil
	if !isObject(data) {
		return nil
	}
	var out Params
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		out = append(out, Param{Name: key, Value: scalarText(raw)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	*p = out
	return nil
}

// Percentile is a score at one distribution point, keyed by its textual percentile ("50.0").
type Percentile struct {
	Key   string
	Value Value
}

// Percentiles keeps percentile entries in input order.
type Percentiles []Percentile

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percentiles) UnmarshalJSON(data []byte) error {
	*p = nil
	if !isObject(data) {
		return nil
	}
	var out Percentiles
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return err
		}
		out = append(out, Percentile{Key: key, Value: v})
		return nil
	})
	if err != nil {
		return fmt.Errorf("scorePercentiles: %w", err)
	}
	*p = out
	return nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// decodeObject walks a JSON object in document order.
func decodeObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimSpace(data)))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// fieldText is scalarText with absent and null fields mapped to "".
func fieldText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	return scalarText(raw)
}

func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
