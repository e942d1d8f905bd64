package merge

import (
	"testing"
	"time"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
	"github.com/pfrederiksen/mlb-attendance/internal/stadium"
	"github.com/pfrederiksen/mlb-attendance/internal/weather"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeRowCountInvariant(t *testing.T) {
	games := []game.Record{
		{Date: day(2019, time.April, 1), Team: "DET"},
		{Date: day(2019, time.April, 2), Team: "DET"},
		{Date: day(2019, time.April, 1), Team: "NYY"},
	}
	weathers := []weather.Record{
		{Date: day(2019, time.April, 1), Team: "DET", Season: 2019, Temp: "48"},
	}
	stadiums := []stadium.Record{
		{Team: "DET", Year: 2019, Stadium: "Comerica Park", Capacity: "41083"},
	}

	merged, err := Merge(games, weathers, stadiums)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if len(merged) != len(games) {
		t.Fatalf("row count changed: %d in, %d out", len(games), len(merged))
	}

	// Input order preserved.
	for i := range games {
		if merged[i].Game.Date != games[i].Date || merged[i].Game.Team != games[i].Team {
			t.Errorf("row %d reordered: got %s %s", i, merged[i].Game.Team, merged[i].Game.Date)
		}
	}

	if !merged[0].WeatherMatched || merged[0].Temp != "48" {
		t.Errorf("row 0 should have weather, got %+v", merged[0])
	}
	if merged[1].WeatherMatched {
		t.Error("row 1 has no weather record and should be unmatched")
	}
	if !merged[0].StadiumMatched || merged[0].Capacity != "41083" {
		t.Errorf("row 0 should have stadium, got %+v", merged[0])
	}
	if merged[2].StadiumMatched {
		t.Error("NYY row has no stadium record and should be unmatched")
	}
}

func TestMergeNormalizesWeatherCodes(t *testing.T) {
	games := []game.Record{
		{Date: day(2010, time.June, 5), Team: "CHC"},
	}
	// Retrosheet calls the Cubs CHN.
	weathers := []weather.Record{
		{Date: day(2010, time.June, 5), Team: "CHN", Season: 2010, Sky: "sunny"},
	}

	merged, err := Merge(games, weathers, nil)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !merged[0].WeatherMatched || merged[0].Sky != "sunny" {
		t.Errorf("weather code normalization failed: %+v", merged[0])
	}
}

func TestMergeSeasonConditionalNormalization(t *testing.T) {
	// ANA is still ANA in 2003 but LAA in 2006.
	games := []game.Record{
		{Date: day(2003, time.May, 1), Team: "ANA"},
		{Date: day(2006, time.May, 1), Team: "LAA"},
	}
	weathers := []weather.Record{
		{Date: day(2003, time.May, 1), Team: "ANA", Season: 2003, Temp: "68"},
		{Date: day(2006, time.May, 1), Team: "ANA", Season: 2006, Temp: "71"},
	}

	merged, err := Merge(games, weathers, nil)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !merged[0].WeatherMatched || merged[0].Temp != "68" {
		t.Errorf("2003 ANA game should match raw ANA weather: %+v", merged[0])
	}
	if !merged[1].WeatherMatched || merged[1].Temp != "71" {
		t.Errorf("2006 LAA game should match normalized ANA weather: %+v", merged[1])
	}
}

func TestMergeDoubleheaderEndToEnd(t *testing.T) {
	dh := day(2019, time.August, 3)
	games := []game.Record{
		{Date: dh, Team: "DET", Boxscore: "game1"},
		{Date: dh, Team: "DET", Boxscore: "game2"},
	}
	weathers := []weather.Record{
		{Date: dh, Team: "DET", Season: 2019, Seq: 1, Temp: "84"},
		{Date: dh, Team: "DET", Season: 2019, Seq: 2, Temp: "77"},
	}

	merged, err := Merge(games, weathers, nil)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("got %d rows, want 2", len(merged))
	}
	if merged[0].Temp != "84" {
		t.Errorf("game 1 got temp %q, want 84", merged[0].Temp)
	}
	if merged[1].Temp != "77" {
		t.Errorf("game 2 got temp %q, want 77", merged[1].Temp)
	}
}

func TestMergeDuplicateWeatherKey(t *testing.T) {
	weathers := []weather.Record{
		{Date: day(2019, time.April, 1), Team: "DET", Season: 2019},
		{Date: day(2019, time.April, 1), Team: "DET", Season: 2019},
	}
	_, err := Merge(nil, weathers, nil)
	if err == nil {
		t.Fatal("expected error for duplicate weather join key")
	}
}

func TestMergeDuplicateStadiumKey(t *testing.T) {
	stadiums := []stadium.Record{
		{Team: "DET", Year: 2019},
		{Team: "DET", Year: 2019},
	}
	_, err := Merge(nil, nil, stadiums)
	if err == nil {
		t.Fatal("expected error for duplicate stadium join key")
	}
}
