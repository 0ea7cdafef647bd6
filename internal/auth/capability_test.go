package auth

import "testing"

func TestCapabilitySetHas(t *testing.T) {
	var set CapabilitySet
	if set.Has(CapBlog) {
		t.Fatal("empty set should hold nothing")
	}
	set = set.With(CapBlog).With(CapJobs)
	if !set.Has(CapBlog) || !set.Has(CapJobs) {
		t.Fatal("added capabilities missing")
	}
	for _, c := range []Capability{CapVendors, CapProperties, CapInquiries, CapApplications} {
		if set.Has(c) {
			t.Fatalf("set unexpectedly holds %s", c)
		}
	}
}

func TestCapabilitiesAreIndependentBits(t *testing.T) {
	all := []Capability{CapVendors, CapProperties, CapInquiries, CapBlog, CapApplications, CapJobs}
	seen := map[Capability]bool{}
	for _, c := range all {
		if seen[c] {
			t.Fatalf("duplicate capability value %d", c)
		}
		seen[c] = true
		if c&(c-1) != 0 {
			t.Fatalf("%s is not a single bit", c)
		}
	}
}

func TestCapabilityString(t *testing.T) {
	if CapBlog.String() != "blog" {
		t.Fatalf("CapBlog.String() = %q", CapBlog.String())
	}
	if Capability(0).String() != "unknown" {
		t.Fatalf("zero capability should stringify as unknown")
	}
}
