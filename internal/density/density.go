package density

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDensity = errors.New("unknown density")

// Density is an Android resource density bucket and the launcher icon size it uses.
type Density struct {
	Name string
	Size int
}

// Fixed launcher icon sizes, ascending.
var table = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// All returns a copy of the density table.
func All() []Density {
	out := make([]Density, len(table))
	copy(out, table)
	return out
}

func Lookup(name string) (Density, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range table {
		if d.Name == name {
			return d, true
		}
	}
	return Density{}, false
}

// Select filters the table by name. Matching ignores case, duplicates are collapsed
// and the result keeps table order. An empty list selects every density.
func Select(names []string) ([]Density, error) {
	wanted := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDensity, raw)
		}
		wanted[name] = true
	}
	if len(wanted) == 0 {
		return All(), nil
	}
	out := make([]Density, 0, len(wanted))
	for _, d := range table {
		if wanted[d.Name] {
			out = append(out, d)
		}
	}
	return out, nil
}

// ParseList splits a comma separated density list, e.g. "mdpi,xhdpi".
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
