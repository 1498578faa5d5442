// Package patterns keeps a registry of named starting patterns stored as RLE
// text.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"life-rle/pkg/core"
	"life-rle/pkg/rle"
)

// ErrUnknown is returned by Lookup for names that were never registered.
var ErrUnknown = errors.New("unknown pattern")

var registry = map[string]string{}

// Register adds RLE text under the provided name, replacing any previous entry.
func Register(name, text string) {
	if name == "" || text == "" {
		return
	}
	registry[name] = text
}

// Lookup decodes the pattern registered under name.
func Lookup(name string) (*core.Board, error) {
	text, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("pattern %q: %w", name, ErrUnknown)
	}
	b, err := rle.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", name, err)
	}
	return b, nil
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("block", "x = 2, y = 2\n2o$2o!")
	Register("blinker", "x = 3, y = 1\n3o!")
	Register("toad", "x = 4, y = 2\nb3o$3o!")
	Register("beacon", "x = 4, y = 4\n2o$o$3bo$2b2o!")
	Register("glider", "x = 3, y = 3\nbo$2bo$3o!")
	Register("lwss", "x = 5, y = 4\nbo2bo$o$o3bo$4o!")
	Register("r-pentomino", "x = 3, y = 3\nb2o$2o$bo!")
	Register("gosper-gun", "x = 36, y = 9, rule = B3/S23\n"+
		"24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4b\n"+
		"obo$10bo5bo7bo$11bo3bo$12b2o!")
}
