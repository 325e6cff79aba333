package domain

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionOrder selects how version directory names are compared.
type VersionOrder string

const (
	// OrderLexical compares version names as plain strings.
	// "9.0.0" sorts after "10.0.0" under this order.
	OrderLexical VersionOrder = "lexical"
	// OrderNumeric compares each dotted component as an integer.
	OrderNumeric VersionOrder = "numeric"
)

var versionDirPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsVersionDir reports whether name is a strict numeric dotted triple.
func IsVersionDir(name string) bool {
	return versionDirPattern.MatchString(name)
}

// ParseVersionOrder validates a configured version order. Empty means lexical.
func ParseVersionOrder(s string) (VersionOrder, error) {
	switch VersionOrder(strings.ToLower(s)) {
	case "", OrderLexical:
		return OrderLexical, nil
	case OrderNumeric:
		return OrderNumeric, nil
	default:
		return "", ErrInvalidVersionOrder
	}
}

// Compare orders two version names under o. Under OrderNumeric leading zeros
// are ignored, so "01.2.3" ranks as 1.2.3.
func (o VersionOrder) Compare(a, b string) int {
	if o == OrderNumeric {
		if c := semver.Compare(canonicalVersion(a), canonicalVersion(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

// canonicalVersion turns a dotted triple into a valid semver string by
// dropping leading zeros from each component.
func canonicalVersion(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if p = strings.TrimLeft(p, "0"); p == "" {
			p = "0"
		}
		parts[i] = p
	}
	return "v" + strings.Join(parts, ".")
}

// NewestVersion filters names to version directories and returns the greatest under o.
func NewestVersion(names []string, o VersionOrder) (string, bool) {
	candidates := slices.DeleteFunc(slices.Clone(names), func(n string) bool {
		return !IsVersionDir(n)
	})
	if len(candidates) == 0 {
		return "", false
	}
	return slices.MaxFunc(candidates, o.Compare), true
}
