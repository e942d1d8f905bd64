package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
)

const dateLayout = "2006-01-02"

var gameHeader = []string{
	"date", "boxscore", "team", "opponent", "w_or_l",
	"runs_scored", "runs_allowed", "innings", "record",
	"division_rank", "games_behind", "winning_pitcher",
	"losing_pitcher", "save", "time", "day_or_night",
	"attendance", "cLI", "streak", "orig_scheduled",
	"dh", "opening_day",
	"runs_scored_pg", "runs_allowed_pg",
	"runs_scored_last_10", "runs_allowed_last_10", "last_10_win_pct",
}

// WriteGames writes scraped game records to game_data.csv.
func WriteGames(path string, records []game.Record) error {
	return WriteAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(gameHeader); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				r.Date.Format(dateLayout), r.Boxscore, r.Team, r.Opponent, r.Result,
				r.RunsScored, r.RunsAllowed, r.Innings, r.Record,
				r.DivisionRank, r.GamesBehind, r.WinningPitcher,
				r.LosingPitcher, r.Save, r.Duration, r.DayNight,
				r.Attendance, r.CLI, r.Streak, r.OrigScheduled,
				strconv.Itoa(r.Doubleheader), strconv.Itoa(r.OpeningDay),
				formatFloat(r.RunsScoredPG), formatFloat(r.RunsAllowedPG),
				formatFloat(r.RunsScoredLast10), formatFloat(r.RunsAllowedLast10),
				formatFloat(r.Last10WinPct),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ReadGames loads game records from game_data.csv.
func ReadGames(path string) ([]game.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading game header: %w", err)
	}
	if len(header) != len(gameHeader) {
		return nil, fmt.Errorf("game CSV has %d columns, want %d", len(header), len(gameHeader))
	}

	var records []game.Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading game CSV: %w", err)
		}
		line++

		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("game CSV line %d: bad date %q", line, row[0])
		}
		dh, err := strconv.Atoi(row[20])
		if err != nil {
			return nil, fmt.Errorf("game CSV line %d: bad dh %q", line, row[20])
		}
		opening, err := strconv.Atoi(row[21])
		if err != nil {
			return nil, fmt.Errorf("game CSV line %d: bad opening_day %q", line, row[21])
		}
		floats := make([]float64, 5)
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(row[22+i], 64)
			if err != nil {
				return nil, fmt.Errorf("game CSV line %d: bad %s %q", line, gameHeader[22+i], row[22+i])
			}
			floats[i] = v
		}

		records = append(records, game.Record{
			Date:           date,
			Boxscore:       row[1],
			Team:           row[2],
			Home:           true, // only home games are persisted
			Opponent:       row[3],
			Result:         row[4],
			RunsScored:     row[5],
			RunsAllowed:    row[6],
			Innings:        row[7],
			Record:         row[8],
			DivisionRank:   row[9],
			GamesBehind:    row[10],
			WinningPitcher: row[11],
			LosingPitcher:  row[12],
			Save:           row[13],
			Duration:       row[14],
			DayNight:       row[15],
			Attendance:     row[16],
			CLI:            row[17],
			Streak:         row[18],
			OrigScheduled:  row[19],
			Doubleheader:   dh,
			OpeningDay:     opening,

			RunsScoredPG:      floats[0],
			RunsAllowedPG:     floats[1],
			RunsScoredLast10:  floats[2],
			RunsAllowedLast10: floats[3],
			Last10WinPct:      floats[4],
		})
	}
	return records, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
