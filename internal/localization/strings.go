// Package localization holds the editor's display strings. Each namespace
// starts with built-in English defaults that a strings file may override.
package localization

import (
	"fmt"
	"strconv"
	"strings"
)

// LocalizedString is a display string with optional {0}, {1} ... placeholders.
type LocalizedString string

func (s LocalizedString) String() string { return string(s) }

// Format substitutes placeholder {i} with args[i]. Unknown placeholders stay.
func (s LocalizedString) Format(args ...any) string {
	if len(args) == 0 {
		return string(s)
	}
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(string(s))
}

func ptr(s LocalizedString) *LocalizedString { return &s }
