// Package auth provides identity primitives shared by handlers and
// middleware: the capability set gating admin feature areas, access token
// issuing/parsing and password hashing.
package auth

// Capability identifies one admin feature area. Each staff account holds an
// independent subset of these; a capability authorizes exactly one area.
type Capability uint8

const (
	CapVendors Capability = 1 << iota // vendor approval & commission
	CapProperties
	CapInquiries
	CapBlog
	CapApplications
	CapJobs
)

// CapabilitySet is a bitset of capabilities. All permission checks go
// through Has so there is a single enforcement point instead of scattered
// per-page flag reads.
type CapabilitySet uint8

// Has reports whether every bit of c is present in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) == CapabilitySet(c)
}

// With returns a copy of the set with c added.
func (s CapabilitySet) With(c Capability) CapabilitySet {
	return s | CapabilitySet(c)
}

// String returns a short label for a capability, used in log lines and
// forbidden responses.
func (c Capability) String() string {
	switch c {
	case CapVendors:
		return "vendors"
	case CapProperties:
		return "properties"
	case CapInquiries:
		return "inquiries"
	case CapBlog:
		return "blog"
	case CapApplications:
		return "applications"
	case CapJobs:
		return "jobs"
	}
	return "unknown"
}
