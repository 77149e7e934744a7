package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// DecodeError reports where a model payload diverged from its declared shape.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode model response at %s: %s", e.Path, e.Reason)
}

// Decode parses raw as JSON, validates it against schema and converts it to T.
// Any mismatch is returned as a *DecodeError rather than a partially filled
// value.
func Decode[T any](raw string, schema *genai.Schema) (T, error) {
	var zero T

	payload := strings.TrimSpace(raw)
	if payload == "" {
		return zero, &DecodeError{Path: "$", Reason: "empty payload"}
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return zero, &DecodeError{Path: "$", Reason: "invalid JSON: " + err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, &DecodeError{Path: "$", Reason: "trailing data after JSON value"}
	}
	if doc == nil {
		return zero, &DecodeError{Path: "$", Reason: "null payload"}
	}

	if schema != nil {
		checked, err := validate(doc, schema, "$")
		if err != nil {
			return zero, err
		}
		doc = checked
	}

	// Re-encode so integral values written as 1.0 reach integer fields as 1.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return zero, &DecodeError{Path: "$", Reason: err.Error()}
	}
	var out T
	if err := json.Unmarshal(normalized, &out); err != nil {
		return zero, &DecodeError{Path: "$", Reason: err.Error()}
	}
	return out, nil
}

// validate checks v against s and returns v with integer fields in canonical
// form.
func validate(v any, s *genai.Schema, path string) (any, error) {
	if v == nil {
		if s.Nullable != nil && *s.Nullable {
			return nil, nil
		}
		return nil, &DecodeError{Path: path, Reason: "unexpected null"}
	}

	switch s.Type {
	case genai.TypeObject:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(path, "object", v)
		}
		required := make(map[string]bool, len(s.Required))
		for _, name := range s.Required {
			required[name] = true
			if _, ok := m[name]; !ok {
				return nil, &DecodeError{Path: path + "." + name, Reason: "missing required field"}
			}
		}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fv, ok := m[name]
			if !ok || (fv == nil && !required[name]) {
				continue
			}
			nv, err := validate(fv, s.Properties[name], path+"."+name)
			if err != nil {
				return nil, err
			}
			m[name] = nv
		}
	case genai.TypeArray:
		a, ok := v.([]any)
		if !ok {
			return nil, mismatch(path, "array", v)
		}
		if s.Items == nil {
			return a, nil
		}
		for i, it := range a {
			nv, err := validate(it, s.Items, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			a[i] = nv
		}
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return nil, mismatch(path, "string", v)
		}
	case genai.TypeNumber:
		if _, ok := v.(json.Number); !ok {
			return nil, mismatch(path, "number", v)
		}
	case genai.TypeInteger:
		n, ok := v.(json.Number)
		if !ok {
			return nil, mismatch(path, "integer", v)
		}
		i, ok := integral(n)
		if !ok {
			return nil, mismatch(path, "integer", v)
		}
		return json.Number(strconv.FormatInt(i, 10)), nil
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return nil, mismatch(path, "boolean", v)
		}
	}
	return v, nil
}

// integral accepts 3, 3.0 and 3e0 alike.
func integral(n json.Number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func mismatch(path, want string, got any) error {
	return &DecodeError{Path: path, Reason: fmt.Sprintf("expected %s, got %s", want, jsonKind(got))}
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return "null"
	}
}
