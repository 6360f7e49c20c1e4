package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// listSchema is the only accepted shape of a persisted list.
const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "done"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "text": {"type": "string", "pattern": "\\S"},
      "done": {"type": "boolean"}
    }
  }
}`

var compiledListSchema = jsonschema.MustCompileString("td-list.json", listSchema)

// CorruptError reports persisted data that does not have the shape of a list.
type CorruptError struct {
	Problems []string // one entry per offending location
	Err      error    // underlying decode error, if any
}

func (e *CorruptError) Error() string {
	if e.Err != nil {
		return "corrupt todo list: " + e.Err.Error()
	}
	return "corrupt todo list: " + strings.Join(e.Problems, "; ")
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// EncodeList serializes l as a JSON array of {id, text, done} objects.
// A nil or empty list encodes as "[]".
func EncodeList(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode todo list: %w", err)
	}
	return data, nil
}

// DecodeList parses a persisted list.
// Any shape mismatch returns a *CorruptError.
func DecodeList(data []byte) (List, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Err: err}
	}

	if err := compiledListSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, &CorruptError{Err: err}
		}
		ce := &CorruptError{}
		collectSchemaProblems(ce, ve)
		return nil, ce
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &CorruptError{Err: err}
	}

	seen := make(map[int64]bool, len(l))
	for i, t := range l {
		if seen[t.ID] {
			return nil, &CorruptError{Problems: []string{fmt.Sprintf("[%d].id: duplicate id %d", i, t.ID)}}
		}
		seen[t.ID] = true
	}

	return l, nil
}

func collectSchemaProblems(ce *CorruptError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		ce.Problems = append(ce.Problems, fmt.Sprintf("%s: %s", pointerToPath(err.InstanceLocation), err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaProblems(ce, cause)
	}
}

// pointerToPath turns "/0/text" into "[0].text".
func pointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return "(root)"
	}
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
