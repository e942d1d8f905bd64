// Package clean transforms merged game records into the model-ready table.
//
// Cleaning is an ordered pipeline of pure stages, each taking and returning
// its own snapshot: deduplication, target filtering, cLI forward fill,
// manual weather overrides, then per-row projection into the typed Row.
// Projection applies every validated parse; a row that fails any coercion is
// reported with its identifying key and skipped, never silently defaulted,
// and never aborts the rest of the table.
package clean

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
	"github.com/pfrederiksen/mlb-attendance/internal/merge"
	"github.com/pfrederiksen/mlb-attendance/internal/weather"
)

// Row is one model-ready game. The struct doubles as the cleaning allow-list:
// source columns without a field here (pitchers, boxscore link, raw result
// letter, record string, innings, game duration) do not survive cleaning.
type Row struct {
	Date     time.Time
	Team     string
	Opponent string
	Stadium  string

	Year        int
	Month       int
	Day         int
	Weekday     int // 0=Monday .. 6=Sunday
	WeekdayName string

	Night        int
	WinPct       float64
	Streak       int
	GamesBehind  float64
	CLI          float64
	DivisionRank int
	Attendance   int
	OpeningDay   int
	Doubleheader int
	Makeup       int
	Capacity     int
	Temp         int
	Windspeed    int
	Precip       string
	Sky          string

	RunsScoredPG      float64
	RunsAllowedPG     float64
	RunsScoredLast10  float64
	RunsAllowedLast10 float64
	Last10WinPct      float64
}

// RowError reports a row that failed cleaning, keyed so the source record
// can be found and fixed.
type RowError struct {
	Date  time.Time
	Team  string
	Field string
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s %s: field %s: %v", e.Date.Format("2006-01-02"), e.Team, e.Field, e.Err)
}

// Clean runs the full pipeline. Rows that fail coercion are returned as
// RowErrors alongside the rows that survived.
func Clean(records []merge.Record) ([]Row, []RowError) {
	records = Dedup(records)
	records = DropMissingAttendance(records)
	records = ForwardFillCLI(records)
	records = ApplyOverrides(records)
	return Project(records)
}

// Dedup drops exact-duplicate rows, keeping first occurrences in order.
func Dedup(records []merge.Record) []merge.Record {
	seen := make(map[merge.Record]bool, len(records))
	out := make([]merge.Record, 0, len(records))
	for _, r := range records {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// DropMissingAttendance removes rows with no attendance figure. Attendance
// is the prediction target; a game without it can neither train nor score.
func DropMissingAttendance(records []merge.Record) []merge.Record {
	out := make([]merge.Record, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Game.Attendance) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ForwardFillCLI fills missing competitive-leverage-index values from the
// immediately preceding row in table order. cLI moves slowly game to game,
// so the previous game's value is a reasonable stand-in; this is an assumed
// imputation, not a guaranteed one.
func ForwardFillCLI(records []merge.Record) []merge.Record {
	out := make([]merge.Record, len(records))
	last := ""
	for i, r := range records {
		if strings.TrimSpace(r.Game.CLI) == "" {
			r.Game.CLI = last
		} else {
			last = r.Game.CLI
		}
		out[i] = r
	}
	return out
}

// ApplyOverrides patches weather fields for games in the manual override
// table. Rows without an override pass through unchanged.
func ApplyOverrides(records []merge.Record) []merge.Record {
	out := make([]merge.Record, len(records))
	for i, r := range records {
		if o, ok := weather.OverrideFor(r.Game.Date, r.Game.Team); ok {
			if o.Precip != nil {
				r.Precip = *o.Precip
			}
			if o.Sky != nil {
				r.Sky = *o.Sky
			}
			if o.Temp != nil {
				r.Temp = *o.Temp
			}
			if o.Windspeed != nil {
				r.Windspeed = *o.Windspeed
			}
		}
		out[i] = r
	}
	return out
}

// Project converts each merged record into a Row, running every validated
// parse. The first failing field fails the row; failed rows are collected
// and skipped.
func Project(records []merge.Record) ([]Row, []RowError) {
	rows := make([]Row, 0, len(records))
	var errs []RowError
	for _, r := range records {
		row, field, err := projectOne(r)
		if err != nil {
			errs = append(errs, RowError{Date: r.Game.Date, Team: r.Game.Team, Field: field, Err: err})
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

func projectOne(r merge.Record) (Row, string, error) {
	g := r.Game

	wins, losses, err := game.ParseWinLossRecord(g.Record)
	if err != nil {
		return Row{}, "record", err
	}
	streak, err := game.ParseStreak(g.Streak)
	if err != nil {
		return Row{}, "streak", err
	}
	gb, err := game.ParseGamesBehind(g.GamesBehind)
	if err != nil {
		return Row{}, "games_behind", err
	}
	attendance, err := game.ParseAttendance(g.Attendance)
	if err != nil {
		return Row{}, "attendance", err
	}
	cli, err := strconv.ParseFloat(strings.TrimSpace(g.CLI), 64)
	if err != nil {
		return Row{}, "cLI", fmt.Errorf("invalid cLI %q", g.CLI)
	}
	rank, err := strictInt(g.DivisionRank)
	if err != nil {
		return Row{}, "division_rank", err
	}
	capacity, err := strictInt(r.Capacity)
	if err != nil {
		return Row{}, "capacity", err
	}
	temp, err := strictInt(r.Temp)
	if err != nil {
		return Row{}, "temp", err
	}
	windspeed, err := strictInt(r.Windspeed)
	if err != nil {
		return Row{}, "windspeed", err
	}

	night := 0
	if strings.Contains(g.DayNight, "N") {
		night = 1
	}
	makeup := 0
	if strings.TrimSpace(g.OrigScheduled) != "" {
		makeup = 1
	}

	return Row{
		Date:     g.Date,
		Team:     g.Team,
		Opponent: g.Opponent,
		Stadium:  r.Stadium,

		Year:        g.Date.Year(),
		Month:       int(g.Date.Month()),
		Day:         g.Date.Day(),
		Weekday:     mondayWeekday(g.Date),
		WeekdayName: g.Date.Weekday().String(),

		Night:        night,
		WinPct:       game.WinPct(wins, losses),
		Streak:       streak,
		GamesBehind:  gb,
		CLI:          cli,
		DivisionRank: rank,
		Attendance:   attendance,
		OpeningDay:   g.OpeningDay,
		Doubleheader: g.Doubleheader,
		Makeup:       makeup,
		Capacity:     capacity,
		Temp:         temp,
		Windspeed:    windspeed,
		Precip:       r.Precip,
		Sky:          r.Sky,

		RunsScoredPG:      g.RunsScoredPG,
		RunsAllowedPG:     g.RunsAllowedPG,
		RunsScoredLast10:  g.RunsScoredLast10,
		RunsAllowedLast10: g.RunsAllowedLast10,
		Last10WinPct:      g.Last10WinPct,
	}, "", nil
}

// strictInt coerces a numeric string to int, tolerating thousands
// separators but nothing else. Empty input is an error, never a default.
func strictInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", s)
	}
	return v, nil
}

// mondayWeekday maps time.Weekday (Sunday=0) to the 0=Monday convention.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
