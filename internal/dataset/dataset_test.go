package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
	"github.com/pfrederiksen/mlb-attendance/internal/game"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	err := WriteAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello\n"))
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteAtomicFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	err := WriteAtomic(path, func(w io.Writer) error {
		w.Write([]byte("partial"))
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("failed write should leave nothing at the final path")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp file left behind: %v", entries)
	}
}

func TestGamesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game_data.csv")

	records := []game.Record{
		{
			Date:         time.Date(2019, time.August, 3, 0, 0, 0, 0, time.UTC),
			Boxscore:     "boxscore",
			Team:         "DET",
			Home:         true,
			Opponent:     "KCR",
			Result:       "W",
			RunsScored:   "5",
			RunsAllowed:  "2",
			Innings:      "",
			Record:       "32-76",
			DivisionRank: "5",
			GamesBehind:  "27.5",
			DayNight:     "N",
			Attendance:   "24,117",
			CLI:          ".02",
			Streak:       "+",
			Doubleheader: 1,
			Last10WinPct: 0.3,
		},
	}

	if err := WriteGames(path, records); err != nil {
		t.Fatalf("WriteGames failed: %v", err)
	}
	got, err := ReadGames(path)
	if err != nil {
		t.Fatalf("ReadGames failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0] != records[0] {
		t.Errorf("round trip changed record:\n got %+v\nwant %+v", got[0], records[0])
	}
}

func TestRowsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MLB_games.csv")

	rows := []clean.Row{
		{
			Date:         time.Date(2019, time.July, 4, 0, 0, 0, 0, time.UTC),
			Team:         "DET",
			Opponent:     "BOS",
			Stadium:      "Comerica Park",
			Year:         2019,
			Month:        7,
			Day:          4,
			Weekday:      3,
			WeekdayName:  "Thursday",
			Night:        1,
			WinPct:       0.47058823529411764,
			Streak:       -2,
			GamesBehind:  8.5,
			CLI:          0.82,
			DivisionRank: 3,
			Attendance:   28517,
			Capacity:     41083,
			Temp:         81,
			Windspeed:    7,
			Precip:       "none",
			Sky:          "cloudy",
			Last10WinPct: 0.4,
		},
	}

	if err := WriteRows(path, rows); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}
	got, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0] != rows[0] {
		t.Errorf("round trip changed row:\n got %+v\nwant %+v", got[0], rows[0])
	}
}
