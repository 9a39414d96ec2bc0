package crates

import (
	"slices"
	"strings"
)

// TransferFunc moves the top n labels of src onto dst. Callers guarantee
// that n does not exceed src.Len().
type TransferFunc func(src, dst *Stack, n int)

// Policy is a named transfer rule.
type Policy struct {
	Name     string
	Transfer TransferFunc
}

var (
	// SingleItem moves labels one at a time, so a run lands reversed.
	SingleItem = Policy{Name: "single", Transfer: moveOneByOne}

	// Bulk moves a run as a single unit, keeping its order.
	Bulk = Policy{Name: "bulk", Transfer: moveAtOnce}
)

func moveOneByOne(src, dst *Stack, n int) {
	run := src.Take(n)
	slices.Reverse(run)
	dst.Push(run...)
}

func moveAtOnce(src, dst *Stack, n int) {
	dst.Push(src.Take(n)...)
}

// Policies returns the built-in policies, SingleItem first.
func Policies() []Policy {
	return []Policy{SingleItem, Bulk}
}

// LookupPolicy returns the built-in policy of the name, ignoring case.
func LookupPolicy(name string) (Policy, error) {
	for _, p := range Policies() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Policy{}, &policyNotFoundError{name}
}
