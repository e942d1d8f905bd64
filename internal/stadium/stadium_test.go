package stadium

import (
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `Team,Year,Stadium,Capacity
NYY,2000,Yankee Stadium,57545
NYY,2001,Yankee Stadium,57478
BOS,2000,Fenway Park,33871
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := Record{Team: "NYY", Year: 2000, Stadium: "Yankee Stadium", Capacity: "57545"}
	if records[0] != want {
		t.Errorf("first record = %+v, want %+v", records[0], want)
	}
	if records[2].Team != "BOS" || records[2].Year != 2000 {
		t.Errorf("third record = %+v, want BOS 2000", records[2])
	}
}

func TestReadReorderedColumns(t *testing.T) {
	csv := `Capacity,Stadium,Year,Team
41915,Wrigley Field,2005,CHC
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := Record{Team: "CHC", Year: 2005, Stadium: "Wrigley Field", Capacity: "41915"}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "missing column",
			csv:  "Team,Year,Stadium\nNYY,2000,Yankee Stadium\n",
		},
		{
			name: "bad year",
			csv:  "Team,Year,Stadium,Capacity\nNYY,two thousand,Yankee Stadium,57545\n",
		},
		{
			name: "duplicate team-year",
			csv:  "Team,Year,Stadium,Capacity\nNYY,2000,Yankee Stadium,57545\nNYY,2000,Yankee Stadium,57545\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTeams(t *testing.T) {
	records := []Record{
		{Team: "NYY", Year: 2000},
		{Team: "BOS", Year: 2000},
		{Team: "NYY", Year: 2001},
		{Team: "CHC", Year: 2000},
	}
	got := Teams(records)
	want := []string{"NYY", "BOS", "CHC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Teams = %v, want %v", got, want)
	}
}
