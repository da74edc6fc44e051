package fleet

import (
	"strconv"
	"strings"
)

// Ordinal is a worker's slot identity: either Numeric or Opaque.
// Ordinals are comparable and are used as snapshot keys.
type Ordinal struct {
	num     int
	raw     string
	numeric bool
}

// Numeric returns a numeric ordinal
func Numeric(n int) Ordinal {
	return Ordinal{num: n, numeric: true}
}

// Opaque returns a raw-string ordinal. Opaque ordinals never match a numeric range.
func Opaque(s string) Ordinal {
	return Ordinal{raw: s}
}

// ParseOrdinal returns Numeric for canonical non-negative decimal integers and Opaque otherwise.
// "03" and "+3" are Opaque so they can never alias ordinal 3; "-1" is Opaque too.
func ParseOrdinal(s string) Ordinal {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strconv.Itoa(n) != s {
		return Opaque(s)
	}

	return Numeric(n)
}

// Int returns the numeric value and true for Numeric ordinals.
func (o Ordinal) Int() (int, bool) {
	return o.num, o.numeric
}

// IsNumeric reports whether o is Numeric
func (o Ordinal) IsNumeric() bool {
	return o.numeric
}

func (o Ordinal) String() string {
	if o.numeric {
		return strconv.Itoa(o.num)
	}

	return o.raw
}

// Less orders numeric ordinals ascending before opaque ones, opaque ones lexicographically.
func (o Ordinal) Less(other Ordinal) bool {
	switch {
	case o.numeric && other.numeric:
		return o.num < other.num
	case o.numeric != other.numeric:
		return o.numeric
	default:
		return strings.Compare(o.raw, other.raw) < 0
	}
}
