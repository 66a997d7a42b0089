package models

import "strings"

// ClassTier identifies the training class of a slot or student and bounds
// how many hours a single slot may record.
type ClassTier string

const (
	ClassTierA ClassTier = "A"
	ClassTierB ClassTier = "B"
	ClassTierC ClassTier = "C"
	ClassTierD ClassTier = "D"
)

var classTierCaps = map[ClassTier]float64{
	ClassTierA: 5,
	ClassTierB: 5,
	ClassTierC: 5,
	ClassTierD: 10,
}

// MaxHours returns the maximum flight hours a slot of this tier may record.
func (t ClassTier) MaxHours() float64 {
	if cap, ok := classTierCaps[t]; ok {
		return cap
	}
	return classTierCaps[ClassTierA]
}

// Valid reports whether the tier is one of A, B, C or D.
func (t ClassTier) Valid() bool {
	_, ok := classTierCaps[t]
	return ok
}

// ParseClassTier normalises raw input into a tier, falling back to A for
// anything unrecognised. Import files are full of stray values.
func ParseClassTier(raw string) ClassTier {
	tier := ClassTier(strings.ToUpper(strings.TrimSpace(raw)))
	if tier.Valid() {
		return tier
	}
	return ClassTierA
}
