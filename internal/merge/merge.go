// Package merge joins scraped game records with weather observations and
// stadium capacities.
//
// Both joins are left joins on unique keys: (date, team, sequence) for
// weather and (team, year) for stadiums. Unmatched games keep empty weather
// or stadium fields for downstream cleaning to resolve; they are never
// dropped. The output preserves game input order and always has exactly as
// many rows as the input.
package merge

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
	"github.com/pfrederiksen/mlb-attendance/internal/stadium"
	"github.com/pfrederiksen/mlb-attendance/internal/team"
	"github.com/pfrederiksen/mlb-attendance/internal/weather"
)

// Record is one game with its joined weather and stadium fields. The
// Matched flags distinguish a genuinely absent join partner from one that
// happened to carry empty values.
type Record struct {
	Game game.Record
	Year int

	Precip         string
	Sky            string
	Temp           string
	Windspeed      string
	WeatherMatched bool

	Stadium        string
	Capacity       string
	StadiumMatched bool
}

type weatherKey struct {
	date time.Time
	team string
	seq  int
}

// Merge produces one Record per input game, in input order. Weather team
// codes are normalized per-record using the observation's season before
// joining. Duplicate join keys on the weather side would fan the join out,
// so they are an error.
func Merge(games []game.Record, weathers []weather.Record, stadiums []stadium.Record) ([]Record, error) {
	byWeather := make(map[weatherKey]weather.Record, len(weathers))
	for _, w := range weathers {
		w.Team = team.Normalize(w.Team, w.Season)
		key := weatherKey{w.Date, w.Team, w.Seq}
		if _, dup := byWeather[key]; dup {
			return nil, fmt.Errorf("duplicate weather record for %s %s game %d",
				w.Date.Format("2006-01-02"), w.Team, w.Seq)
		}
		byWeather[key] = w
	}

	byStadium := make(map[stadium.Key]stadium.Record, len(stadiums))
	for _, s := range stadiums {
		key := stadium.Key{Team: s.Team, Year: s.Year}
		if _, dup := byStadium[key]; dup {
			return nil, fmt.Errorf("duplicate stadium record for %s %d", s.Team, s.Year)
		}
		byStadium[key] = s
	}

	games = game.AssignSequences(games)

	out := make([]Record, 0, len(games))
	for _, g := range games {
		rec := Record{Game: g, Year: g.Date.Year()}

		if w, ok := byWeather[weatherKey{g.Date, g.Team, g.Seq}]; ok {
			rec.Precip = w.Precip
			rec.Sky = w.Sky
			rec.Temp = w.Temp
			rec.Windspeed = w.Windspeed
			rec.WeatherMatched = true
		}

		if s, ok := byStadium[stadium.Key{Team: g.Team, Year: rec.Year}]; ok {
			rec.Stadium = s.Stadium
			rec.Capacity = s.Capacity
			rec.StadiumMatched = true
		}

		out = append(out, rec)
	}

	if len(out) != len(games) {
		return nil, fmt.Errorf("merge changed row count: %d in, %d out", len(games), len(out))
	}
	return out, nil
}
