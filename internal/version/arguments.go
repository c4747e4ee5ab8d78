// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

// Arguments are the structured arguments of a Descriptor.
type Arguments struct {
	Game []Argument `json:"game"`
	JVM  []Argument `json:"jvm"`
}

// Argument is either a plain string or a conditional value. Exactly one of the fields is set.
type Argument struct {
	Plain       string
	Conditional *ConditionalArgument
}

// ConditionalArgument is a Value gated by rules, ex. {"rules":[{"action":"allow","os":{"name":"osx"}}],"value":"-XstartOnFirstThread"}
type ConditionalArgument struct {
	Rules []Rule `json:"rules"`
	Value Value  `json:"value"`
}

// Value is a string or a list of strings. A string decodes as a list with one element.
type Value []string

// Select returns the game and JVM arguments for the platform, in declaration order.
//
// Conditional game arguments are skipped. A conditional JVM argument is included when any of its rules has no OS name
// or names the platform; the rule action isn't considered.
func (a *Arguments) Select(p platform.Platform) (game, jvm []string) {
	for _, arg := range a.Game {
		if arg.Conditional == nil {
			game = append(game, arg.Plain)
		}
	}
	for _, arg := range a.JVM {
		switch {
		case arg.Conditional == nil:
			jvm = append(jvm, arg.Plain)
		case arg.Conditional.matches(p):
			jvm = append(jvm, arg.Conditional.Value...)
		}
	}
	return
}

func (c *ConditionalArgument) matches(p platform.Platform) bool {
	for _, r := range c.Rules {
		if r.OS == nil || r.OS.Name == "" || r.OS.Name == p.NativeID() {
			return true
		}
	}
	return false
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Argument) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		a.Conditional = nil
		return json.Unmarshal(data, &a.Plain)
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("argument should be a string or an object, but was %s", data)
	}
	c := &ConditionalArgument{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}
	a.Plain, a.Conditional = "", c
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Argument) MarshalJSON() ([]byte, error) {
	if a.Conditional != nil {
		return json.Marshal(a.Conditional)
	}
	return json.Marshal(a.Plain)
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{s}
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("value should be a string or a list of strings: %w", err)
	}
	*v = values
	return nil
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]string(v))
}
