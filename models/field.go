// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field describes one form field that is rendered into the outbound message.
type Field struct {
	// Key is the form field name as sent by the client (e.g. "name").
	Key string `json:"key"`

	// Label is the human-readable caption rendered in front of the value
	// (e.g. "Name").
	Label string `json:"label"`
}

// FieldSet is an ordered list of form fields. Rendering follows the order of
// the set, so it doubles as the layout of the outbound message.
type FieldSet []Field

// DefaultFieldSet is used when no field set is configured.
var DefaultFieldSet = FieldSet{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "city", Label: "City"},
	{Key: "message", Label: "Message"},
}

// UnmarshalText parses a comma separated list of key:Label pairs, e.g.
//
//	name:Name,email:Email,phone:Phone Number
//
// A pair without a label uses the key as its label.
func (fs *FieldSet) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*fs = nil
		return nil
	}

	parsed := make(FieldSet, 0, strings.Count(raw, ",")+1)
	for _, pair := range strings.Split(raw, ",") {
		key, label, _ := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		label = strings.TrimSpace(label)
		if key == "" {
			return fmt.Errorf("empty field key in %q", pair)
		}
		if label == "" {
			label = key
		}
		parsed = append(parsed, Field{Key: key, Label: label})
	}

	*fs = parsed
	return nil
}

// UnmarshalJSON accepts either the key:Label string form or an array of
// {"key", "label"} objects.
func (fs *FieldSet) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		return fs.UnmarshalText([]byte(text))
	}

	var fields []Field
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("field set must be a string or an array of fields: %w", err)
	}

	*fs = fields
	return nil
}

// Keys returns the field keys in order.
func (fs FieldSet) Keys() []string {
	keys := make([]string, 0, len(fs))
	for _, f := range fs {
		keys = append(keys, f.Key)
	}
	return keys
}

// Has reports whether the set contains a field with the given key.
func (fs FieldSet) Has(key string) bool {
	for _, f := range fs {
		if f.Key == key {
			return true
		}
	}
	return false
}
