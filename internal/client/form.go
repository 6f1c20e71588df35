package client

import (
	"net/url"
	"strings"
)

// Field is one key=value pair of a form body.
type Field struct {
	Key   string
	Value string
}

// Form keeps fields in the order they were given.
type Form []Field

// Get returns the first value stored under key.
func (f Form) Get(key string) string {
	for _, fl := range f {
		if fl.Key == key {
			return fl.Value
		}
	}
	return ""
}

// Encode joins fields as key=value with "&". Values are percent-encoded with
// spaces as %20, matching what a browser's encodeURIComponent produces.
func (f Form) Encode() string {
	parts := make([]string, 0, len(f))
	for _, fl := range f {
		parts = append(parts, fl.Key+"="+escape(fl.Value))
	}
	return strings.Join(parts, "&")
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
