package fleet

import (
	"strconv"
	"strings"
)

// NamingScheme describes how a worker's identity is encoded in its tags:
// NameTagKey holds "<Prefix><Separator><ordinal>", RoleTagKey holds RoleTagValue.
type NamingScheme struct {
	NameTagKey   string
	Prefix       string
	Separator    string
	RoleTagKey   string
	RoleTagValue string
	// ExtraTags are attached to created instances. Name and role tags take precedence.
	ExtraTags map[string]string
}

// Parse extracts the ordinal from instance tags.
// Returns false when the name tag is missing, has no separator, carries
// a foreign prefix or an empty suffix.
func (ns NamingScheme) Parse(tags map[string]string) (Ordinal, bool) {
	name, ok := tags[ns.NameTagKey]
	if !ok {
		return Ordinal{}, false
	}

	prefix, suffix, found := strings.Cut(name, ns.Separator)
	if !found || prefix != ns.Prefix || suffix == "" {
		return Ordinal{}, false
	}

	return ParseOrdinal(suffix), true
}

// Name returns the name tag value for ordinal n
func (ns NamingScheme) Name(n int) string {
	return ns.Prefix + ns.Separator + strconv.Itoa(n)
}

// Tags returns the full tag set for a worker created at ordinal n
func (ns NamingScheme) Tags(n int) map[string]string {
	tags := make(map[string]string, len(ns.ExtraTags)+2)
	for k, v := range ns.ExtraTags {
		tags[k] = v
	}

	tags[ns.NameTagKey] = ns.Name(n)
	if ns.RoleTagKey != "" {
		tags[ns.RoleTagKey] = ns.RoleTagValue
	}

	return tags
}
