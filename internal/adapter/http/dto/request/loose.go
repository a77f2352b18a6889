package request

import (
	"bytes"
	"encoding/json"
)

// LooseString decodes any JSON value. Strings are kept, everything else
// (numbers, objects, null) becomes "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = LooseString(v)
	return nil
}

func (s LooseString) String() string { return string(s) }

// LooseStrings decodes a JSON array of LooseString. A value that is not an
// array decodes to nil.
type LooseStrings []string

func (s *LooseStrings) UnmarshalJSON(data []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		*s = nil
		return nil
	}
	var raw []LooseString
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = string(r)
	}
	*s = out
	return nil
}

// Optional returns nil for "" so absent and non-string values are stored as null.
func (s LooseString) Optional() *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}
