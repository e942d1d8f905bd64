package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/clean"
)

var rowHeader = []string{
	"date", "team", "opponent", "stadium",
	"year", "month", "day", "day_of_week", "day_of_week_name",
	"night", "win_pct", "streak", "games_behind", "cLI",
	"division_rank", "attendance", "opening_day", "dh", "makeup",
	"capacity", "temp", "windspeed", "precip", "sky",
	"runs_scored_pg", "runs_allowed_pg",
	"runs_scored_last_10", "runs_allowed_last_10", "last_10_win_pct",
}

// WriteRows writes the model-ready table.
func WriteRows(path string, rows []clean.Row) error {
	return WriteAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(rowHeader); err != nil {
			return err
		}
		for _, r := range rows {
			record := []string{
				r.Date.Format(dateLayout), r.Team, r.Opponent, r.Stadium,
				strconv.Itoa(r.Year), strconv.Itoa(r.Month), strconv.Itoa(r.Day),
				strconv.Itoa(r.Weekday), r.WeekdayName,
				strconv.Itoa(r.Night), formatFloat(r.WinPct), strconv.Itoa(r.Streak),
				formatFloat(r.GamesBehind), formatFloat(r.CLI),
				strconv.Itoa(r.DivisionRank), strconv.Itoa(r.Attendance),
				strconv.Itoa(r.OpeningDay), strconv.Itoa(r.Doubleheader), strconv.Itoa(r.Makeup),
				strconv.Itoa(r.Capacity), strconv.Itoa(r.Temp), strconv.Itoa(r.Windspeed),
				r.Precip, r.Sky,
				formatFloat(r.RunsScoredPG), formatFloat(r.RunsAllowedPG),
				formatFloat(r.RunsScoredLast10), formatFloat(r.RunsAllowedLast10),
				formatFloat(r.Last10WinPct),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ReadRows loads the model-ready table.
func ReadRows(path string) ([]clean.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}
	if len(header) != len(rowHeader) {
		return nil, fmt.Errorf("dataset CSV has %d columns, want %d", len(header), len(rowHeader))
	}

	var rows []clean.Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset CSV: %w", err)
		}
		line++

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("dataset CSV line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (clean.Row, error) {
	date, err := time.Parse(dateLayout, record[0])
	if err != nil {
		return clean.Row{}, fmt.Errorf("bad date %q", record[0])
	}

	ints := map[string]int{}
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"year", 4}, {"month", 5}, {"day", 6}, {"day_of_week", 7},
		{"night", 9}, {"streak", 11}, {"division_rank", 14}, {"attendance", 15},
		{"opening_day", 16}, {"dh", 17}, {"makeup", 18},
		{"capacity", 19}, {"temp", 20}, {"windspeed", 21},
	} {
		v, err := strconv.Atoi(record[c.idx])
		if err != nil {
			return clean.Row{}, fmt.Errorf("bad %s %q", c.name, record[c.idx])
		}
		ints[c.name] = v
	}

	floats := map[string]float64{}
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"win_pct", 10}, {"games_behind", 12}, {"cLI", 13},
		{"runs_scored_pg", 24}, {"runs_allowed_pg", 25},
		{"runs_scored_last_10", 26}, {"runs_allowed_last_10", 27}, {"last_10_win_pct", 28},
	} {
		v, err := strconv.ParseFloat(record[c.idx], 64)
		if err != nil {
			return clean.Row{}, fmt.Errorf("bad %s %q", c.name, record[c.idx])
		}
		floats[c.name] = v
	}

	return clean.Row{
		Date:     date,
		Team:     record[1],
		Opponent: record[2],
		Stadium:  record[3],

		Year:        ints["year"],
		Month:       ints["month"],
		Day:         ints["day"],
		Weekday:     ints["day_of_week"],
		WeekdayName: record[8],

		Night:        ints["night"],
		WinPct:       floats["win_pct"],
		Streak:       ints["streak"],
		GamesBehind:  floats["games_behind"],
		CLI:          floats["cLI"],
		DivisionRank: ints["division_rank"],
		Attendance:   ints["attendance"],
		OpeningDay:   ints["opening_day"],
		Doubleheader: ints["dh"],
		Makeup:       ints["makeup"],
		Capacity:     ints["capacity"],
		Temp:         ints["temp"],
		Windspeed:    ints["windspeed"],
		Precip:       record[22],
		Sky:          record[23],

		RunsScoredPG:      floats["runs_scored_pg"],
		RunsAllowedPG:     floats["runs_allowed_pg"],
		RunsScoredLast10:  floats["runs_scored_last_10"],
		RunsAllowedLast10: floats["runs_allowed_last_10"],
		Last10WinPct:      floats["last_10_win_pct"],
	}, nil
}
