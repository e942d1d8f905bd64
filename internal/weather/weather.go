// Package weather loads per-game weather observations from the filtered
// retrosheet gameinfo CSV and carries the manual override table for known
// source gaps.
package weather

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// Record is one game's weather observation. Team holds the raw retrosheet
// franchise code; callers normalize it before joining against game data.
// Temp and Windspeed stay strings until the cleaning stage coerces them.
type Record struct {
	Date      time.Time
	Team      string
	Season    int
	Precip    string
	Sky       string
	Temp      string
	Windspeed string
	Seq       int // doubleheader game number, 0 for single games
}

// Load reads weather records from a retrosheet gameinfo CSV. Columns are
// located by header name so the filter stage can pass extra columns through
// untouched.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening weather CSV: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses weather records from CSV data.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading weather header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"date", "hometeam", "season", "number", "precip", "sky", "temp", "windspeed"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("weather CSV missing column %q", required)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading weather CSV: %w", err)
		}
		line++

		date, err := time.Parse("20060102", row[col["date"]])
		if err != nil {
			return nil, fmt.Errorf("weather CSV line %d: bad date %q", line, row[col["date"]])
		}
		var season, number int
		if _, err := fmt.Sscanf(row[col["season"]], "%d", &season); err != nil {
			return nil, fmt.Errorf("weather CSV line %d: bad season %q", line, row[col["season"]])
		}
		if _, err := fmt.Sscanf(row[col["number"]], "%d", &number); err != nil {
			return nil, fmt.Errorf("weather CSV line %d: bad game number %q", line, row[col["number"]])
		}

		records = append(records, Record{
			Date:      date,
			Team:      row[col["hometeam"]],
			Season:    season,
			Precip:    row[col["precip"]],
			Sky:       row[col["sky"]],
			Temp:      row[col["temp"]],
			Windspeed: row[col["windspeed"]],
			Seq:       number,
		})
	}
	return records, nil
}
