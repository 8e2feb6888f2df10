// internal/models/raw_rom.go
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRom is one record of a <platform>_roms.json fixture. Upstream scrapes
// are inconsistent about quoting numbers, so every field accepts strings,
// numbers, booleans and null.
type RawRom struct {
	Slug        LooseString `json:"slug"`
	Title       LooseString `json:"title"`
	Downloads   LooseString `json:"downloads"`
	Category    LooseString `json:"category"`
	Image       LooseString `json:"image"`
	ReleaseYear LooseString `json:"release_year"`
	Region      LooseString `json:"region"`
	FileName    LooseString `json:"file_name"`
	Size        LooseString `json:"size"`
	DownloadURL LooseString `json:"download_url"`
	Console     LooseString `json:"console"`
}

// LooseString holds a JSON scalar as text. null decodes to "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}

	// booleans and nested values keep their literal form
	if len(data) > 0 && data[0] != '-' && (data[0] < '0' || data[0] > '9') {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(data)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = LooseString(formatNumber(n))
	return nil
}

// formatNumber renders a JSON number the way it prints as text: integral
// values as plain digits (6.5e5 is "650000"), others in shortest form.
func formatNumber(n json.Number) string {
	literal := n.String()
	if !strings.ContainsAny(literal, ".eE") {
		return literal
	}

	f, err := n.Float64()
	if err != nil {
		return literal
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s LooseString) String() string {
	return string(s)
}
