// Package game provides the per-team-game record type along with the
// validated field parsers, doubleheader sequencing, and trailing-feature
// computation the rest of the pipeline is built on.
//
// Standings-style fields (record, streak, games behind, attendance) are kept
// as raw strings on the Record; downstream cleaning coerces them with the
// parsers in this package so that malformed source values surface as typed
// errors instead of silent defaults.
package game

import "time"

// Record is one team-game row as scraped from a season schedule table,
// plus the features derived during scraping.
type Record struct {
	Date           time.Time
	Boxscore       string
	Team           string
	Home           bool
	Opponent       string
	Result         string // "W", "L", possibly suffixed (e.g. "W-wo")
	RunsScored     string
	RunsAllowed    string
	Innings        string
	Record         string // cumulative "W-L" entering the game
	DivisionRank   string
	GamesBehind    string
	WinningPitcher string
	LosingPitcher  string
	Save           string
	Duration       string // game length, "H:MM"
	DayNight       string // "D" or "N"
	Attendance     string
	CLI            string
	Streak         string
	OrigScheduled  string

	Doubleheader int // 1 if part of a doubleheader
	OpeningDay   int // 1 if the team's first home game of the season
	Seq          int // which game of the day, see AssignSequences

	// Trailing features, reflecting state entering the game.
	RunsScoredPG      float64
	RunsAllowedPG     float64
	RunsScoredLast10  float64
	RunsAllowedLast10 float64
	Last10WinPct      float64
}

// Won reports whether the team won the game. Result values carry suffixes
// for walk-offs ("W-wo"), so this is a contains check, matching the source.
func (r Record) Won() bool {
	for i := 0; i < len(r.Result); i++ {
		if r.Result[i] == 'W' {
			return true
		}
	}
	return false
}
