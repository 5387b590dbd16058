package progress

import "time"

// StreakOutcome describes what a login did to the day streak.
type StreakOutcome int

const (
	StreakUnchanged StreakOutcome = iota // repeat visit on the same day
	StreakContinued                      // last login was yesterday
	StreakReset                          // gap of two or more days, or no usable last login
)

// StreakUpdate is the result of UpdateStreak.
type StreakUpdate struct {
	Outcome StreakOutcome
	Streak  int
}

// UpdateStreak applies a login at now to the user's day streak.
// Days are compared by calendar date in now's location, not by elapsed hours,
// so a login at 23:59 followed by one at 00:01 continues the streak.
// LastLogin is always set to now.
func UpdateStreak(u *User, now time.Time) StreakUpdate {
	last := u.LastLogin.In(now.Location())

	var outcome StreakOutcome
	switch {
	case sameDay(last, now.AddDate(0, 0, -1)):
		u.Streak++
		outcome = StreakContinued
	case !sameDay(last, now):
		u.Streak = 1
		outcome = StreakReset
	default:
		outcome = StreakUnchanged
	}

	u.LastLogin = now
	return StreakUpdate{Outcome: outcome, Streak: u.Streak}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
