package team

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		season int
		want   string
	}{
		{"static mapping CHN", "CHN", 2010, "CHC"},
		{"static mapping SLN", "SLN", 2000, "STL"},
		{"static mapping MON", "MON", 2003, "MON"},
		{"static mapping WAS", "WAS", 2006, "WSN"},
		{"identity mapping BOS", "BOS", 2015, "BOS"},
		{"unknown code passes through", "XYZ", 2012, "XYZ"},
		{"ANA stays ANA in 2000", "ANA", 2000, "ANA"},
		{"ANA stays ANA in 2004", "ANA", 2004, "ANA"},
		{"ANA maps to LAA in 2005", "ANA", 2005, "LAA"},
		{"ANA maps to LAA in 2024", "ANA", 2024, "LAA"},
		{"TBA is TBD in 2000", "TBA", 2000, "TBD"},
		{"TBA is TBD in 2007", "TBA", 2007, "TBD"},
		{"TBA maps to TBR in 2008", "TBA", 2008, "TBR"},
		{"FLO maps to FLA", "FLO", 2004, "FLA"},
		{"MIA identity", "MIA", 2013, "MIA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.code, tt.season)
			if got != tt.want {
				t.Errorf("Normalize(%q, %d) = %q, want %q", tt.code, tt.season, got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Normalize("KCA", 2010); got != "KCR" {
			t.Fatalf("Normalize not deterministic: got %q on call %d", got, i)
		}
	}
}
