// Package stadium loads per-season stadium capacity records.
package stadium

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Record is one team-season's home stadium. Capacity stays a string until
// the cleaning stage coerces it.
type Record struct {
	Team     string
	Year     int
	Stadium  string
	Capacity string
}

// Key identifies a record; at most one record exists per (team, year).
type Key struct {
	Team string
	Year int
}

// Load reads stadium capacity records from CSV, erroring on duplicate
// (team, year) pairs since the merge relies on that key being unique.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stadium CSV: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses stadium records from CSV data.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading stadium header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"Team", "Year", "Stadium", "Capacity"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("stadium CSV missing column %q", required)
		}
	}

	var records []Record
	seen := make(map[Key]bool)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading stadium CSV: %w", err)
		}
		line++

		year, err := strconv.Atoi(row[col["Year"]])
		if err != nil {
			return nil, fmt.Errorf("stadium CSV line %d: bad year %q", line, row[col["Year"]])
		}
		key := Key{Team: row[col["Team"]], Year: year}
		if seen[key] {
			return nil, fmt.Errorf("stadium CSV line %d: duplicate record for %s %d", line, key.Team, key.Year)
		}
		seen[key] = true

		records = append(records, Record{
			Team:     key.Team,
			Year:     year,
			Stadium:  row[col["Stadium"]],
			Capacity: row[col["Capacity"]],
		})
	}
	return records, nil
}

// Teams returns the distinct team codes in order of first appearance.
// The scraper uses this as its team list.
func Teams(records []Record) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, r := range records {
		if !seen[r.Team] {
			seen[r.Team] = true
			teams = append(teams, r.Team)
		}
	}
	return teams
}
