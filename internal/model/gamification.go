// internal/model/gamification.go
package model

import "math"

// XP bonuses awarded when a date is locked for the first time.
const (
	XPFirstCommit  = 20
	XPGratitude    = 5
	XPPerAgreement = 2
)

// Level derives the gamification level from total XP:
// floor(sqrt(xp/100)) + 1. Monotonic non-decreasing.
func Level(xpTotal int) int {
	if xpTotal < 0 {
		xpTotal = 0
	}
	return int(math.Sqrt(float64(xpTotal)/100.0)) + 1
}

// XPThresholdForLevel is the XP at which level n+1 is first reached
// (n^2 * 100). Level n's floor is XPThresholdForLevel(n-1).
func XPThresholdForLevel(n int) int {
	if n < 0 {
		return 0
	}
	return n * n * 100
}

// ProgressToNextLevel reports how far into the current level xpTotal sits,
// clamped to [0,1].
func ProgressToNextLevel(xpTotal int) float64 {
	if xpTotal < 0 {
		xpTotal = 0
	}
	lvl := Level(xpTotal)
	floor := XPThresholdForLevel(lvl - 1)
	ceil := XPThresholdForLevel(lvl)
	if ceil <= floor {
		// Cannot happen for n>=1 with the quadratic thresholds, but never
		// divide by zero.
		return 0
	}
	p := float64(xpTotal-floor) / float64(ceil-floor)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// CommitXP is the pure XP-award rule for commitAndLock. It returns the delta
// for locking rec: zero when the bonus was already paid out for this date,
// otherwise the base bonus plus the gratitude and per-fulfilled-agreement
// extras.
func CommitXP(rec *DailyRecord) int {
	if rec == nil || rec.XPAwarded {
		return 0
	}
	xp := XPFirstCommit
	if rec.GratitudeNote != "" {
		xp += XPGratitude
	}
	for _, done := range rec.AgreementFulfillment {
		if done {
			xp += XPPerAgreement
		}
	}
	return xp
}
