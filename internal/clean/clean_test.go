package clean

import (
	"testing"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
	"github.com/pfrederiksen/mlb-attendance/internal/merge"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validRecord returns a merged record that survives every cleaning rule.
func validRecord() merge.Record {
	return merge.Record{
		Game: game.Record{
			Date:         day(2019, time.July, 4), // a Thursday
			Team:         "DET",
			Opponent:     "BOS",
			Record:       "40-45",
			DivisionRank: "3",
			GamesBehind:  "8.5",
			Streak:       "++",
			DayNight:     "N",
			Attendance:   "28,517",
			CLI:          "0.82",
		},
		Year:      2019,
		Precip:    "none",
		Sky:       "cloudy",
		Temp:      "81",
		Windspeed: "7",
		Stadium:   "Comerica Park",
		Capacity:  "41083",
	}
}

func TestProjectOne(t *testing.T) {
	rows, errs := Project([]merge.Record{validRecord()})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	r := rows[0]
	if r.Year != 2019 || r.Month != 7 || r.Day != 4 {
		t.Errorf("date decomposition = %d-%d-%d, want 2019-7-4", r.Year, r.Month, r.Day)
	}
	if r.Weekday != 3 {
		t.Errorf("Weekday = %d, want 3 (Thursday, 0=Monday)", r.Weekday)
	}
	if r.WeekdayName != "Thursday" {
		t.Errorf("WeekdayName = %q, want Thursday", r.WeekdayName)
	}
	if r.Night != 1 {
		t.Errorf("Night = %d, want 1", r.Night)
	}
	if want := 40.0 / 85.0; r.WinPct != want {
		t.Errorf("WinPct = %v, want %v", r.WinPct, want)
	}
	if r.Streak != 2 {
		t.Errorf("Streak = %d, want 2", r.Streak)
	}
	if r.GamesBehind != 8.5 {
		t.Errorf("GamesBehind = %v, want 8.5", r.GamesBehind)
	}
	if r.Attendance != 28517 {
		t.Errorf("Attendance = %d, want 28517", r.Attendance)
	}
	if r.Capacity != 41083 || r.Temp != 81 || r.Windspeed != 7 {
		t.Errorf("coerced ints = %d/%d/%d, want 41083/81/7", r.Capacity, r.Temp, r.Windspeed)
	}
	if r.Makeup != 0 {
		t.Errorf("Makeup = %d, want 0", r.Makeup)
	}
}

func TestProjectMakeupFlag(t *testing.T) {
	rec := validRecord()
	rec.Game.OrigScheduled = "Tuesday, Jul 2"
	rows, errs := Project([]merge.Record{rec})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rows[0].Makeup != 1 {
		t.Errorf("Makeup = %d, want 1 for rescheduled game", rows[0].Makeup)
	}
}

func TestProjectSurfacesBadRowsAndContinues(t *testing.T) {
	good := validRecord()
	bad := validRecord()
	bad.Game.Date = day(2019, time.July, 5)
	bad.Windspeed = "calm" // non-numeric after all prior rules

	rows, errs := Project([]merge.Record{bad, good})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (good row preserved)", len(rows))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Field != "windspeed" {
		t.Errorf("error field = %q, want windspeed", errs[0].Field)
	}
	if errs[0].Team != "DET" || errs[0].Date != day(2019, time.July, 5) {
		t.Errorf("error key = %s %v, want DET 2019-07-05", errs[0].Team, errs[0].Date)
	}
}

func TestProjectMissingWeatherSurfaced(t *testing.T) {
	rec := validRecord()
	rec.Temp = "" // unmatched weather join
	rec.WeatherMatched = false

	rows, errs := Project([]merge.Record{rec})
	if len(rows) != 0 {
		t.Fatal("row with missing temp should not survive coercion")
	}
	if len(errs) != 1 || errs[0].Field != "temp" {
		t.Fatalf("want one temp error, got %v", errs)
	}
}

func TestProjectPreseasonRecord(t *testing.T) {
	rec := validRecord()
	rec.Game.Record = "0-0"
	rows, errs := Project([]merge.Record{rec})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rows[0].WinPct != 0 {
		t.Errorf("WinPct for 0-0 = %v, want 0", rows[0].WinPct)
	}
}

func TestDedup(t *testing.T) {
	a := validRecord()
	b := validRecord()
	c := validRecord()
	c.Game.Date = day(2019, time.July, 5)

	out := Dedup([]merge.Record{a, b, c})
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].Game.Date != a.Game.Date || out[1].Game.Date != c.Game.Date {
		t.Error("dedup should keep first occurrences in order")
	}
}

func TestDropMissingAttendance(t *testing.T) {
	a := validRecord()
	b := validRecord()
	b.Game.Attendance = "  "

	out := DropMissingAttendance([]merge.Record{a, b})
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
}

func TestForwardFillCLI(t *testing.T) {
	a := validRecord()
	a.Game.CLI = "1.2"
	b := validRecord()
	b.Game.CLI = ""
	c := validRecord()
	c.Game.CLI = "0.9"
	d := validRecord()
	d.Game.CLI = ""

	out := ForwardFillCLI([]merge.Record{a, b, c, d})
	got := []string{out[0].Game.CLI, out[1].Game.CLI, out[2].Game.CLI, out[3].Game.CLI}
	want := []string{"1.2", "1.2", "0.9", "0.9"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d CLI = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestForwardFillCLILeadingMissing(t *testing.T) {
	a := validRecord()
	a.Game.CLI = ""
	out := ForwardFillCLI([]merge.Record{a})
	if out[0].Game.CLI != "" {
		t.Errorf("leading missing cLI should stay empty, got %q", out[0].Game.CLI)
	}
	// ...and then surface during projection rather than defaulting.
	_, errs := Project(out)
	if len(errs) != 1 || errs[0].Field != "cLI" {
		t.Fatalf("want one cLI error, got %v", errs)
	}
}

func TestApplyOverrides(t *testing.T) {
	// 2000-07-08 NYM is in the override table (cross-stadium doubleheader).
	rec := validRecord()
	rec.Game.Date = day(2000, time.July, 8)
	rec.Game.Team = "NYM"
	rec.Temp = ""
	rec.Sky = ""
	untouched := validRecord()

	out := ApplyOverrides([]merge.Record{rec, untouched})
	if out[0].Temp != "75" || out[0].Sky != "cloudy" {
		t.Errorf("override not applied: temp %q sky %q", out[0].Temp, out[0].Sky)
	}
	if out[1] != untouched {
		t.Error("row without override changed")
	}
}

func TestCleanEndToEnd(t *testing.T) {
	a := validRecord()
	dup := a
	noAtt := validRecord()
	noAtt.Game.Attendance = ""

	rows, errs := Clean([]merge.Record{a, dup, noAtt})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (dup and missing-attendance dropped)", len(rows))
	}
}
