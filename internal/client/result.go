package client

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform JSON envelope every mutation endpoint answers with.
// Fields other than success and error land in Data.
type Result struct {
	Success bool
	Error   string
	Data    map[string]any
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s, ok := raw["success"]
	if !ok {
		return fmt.Errorf("response has no success field")
	}
	if err := json.Unmarshal(s, &r.Success); err != nil {
		return fmt.Errorf("success: %w", err)
	}
	if e, ok := raw["error"]; ok {
		// error may be a string or a structured object; keep text either way
		if err := json.Unmarshal(e, &r.Error); err != nil {
			r.Error = string(e)
		}
	}
	r.Data = make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "success" || k == "error" {
			continue
		}
		var x any
		if err := json.Unmarshal(v, &x); err == nil {
			r.Data[k] = x
		}
	}
	return nil
}

// String returns a Data value rendered as text, or "" when absent.
func (r Result) String(key string) string {
	v, ok := r.Data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ServerError is a response with success=false.
type ServerError struct {
	Op      Op
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// StatusError is a non-2xx response whose body was not a result envelope.
type StatusError struct {
	Op     Op
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http %d", e.Op, e.Status)
}
