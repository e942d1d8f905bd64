// Package team maps retrosheet franchise codes to the baseball-reference
// codes used by the schedule and stadium-capacity sources.
//
// The mapping covers every franchise active since 2000, including relocations
// and renamings (MON/WSN, FLO/FLA/MIA, ANA/LAA, TBA/TBD/TBR). Two franchises
// kept their old codes for part of the covered range, so normalization is
// conditional on the season.
package team

// retrosheet code -> baseball-reference code
var codeMap = map[string]string{
	"ANA": "LAA",
	"ARI": "ARI",
	"ATL": "ATL",
	"BAL": "BAL",
	"BOS": "BOS",
	"CHN": "CHC",
	"CHA": "CHW",
	"CIN": "CIN",
	"CLE": "CLE",
	"COL": "COL",
	"DET": "DET",
	"FLO": "FLA",
	"HOU": "HOU",
	"KCA": "KCR",
	"LAN": "LAD",
	"MIA": "MIA",
	"MIL": "MIL",
	"MIN": "MIN",
	"MON": "MON",
	"NYA": "NYY",
	"NYN": "NYM",
	"OAK": "OAK",
	"PHI": "PHI",
	"PIT": "PIT",
	"SDN": "SDP",
	"SEA": "SEA",
	"SFN": "SFG",
	"SLN": "STL",
	"TBA": "TBR",
	"TEX": "TEX",
	"TOR": "TOR",
	"WAS": "WSN",
}

// Normalize returns the baseball-reference code for a retrosheet franchise
// code in the given season. Codes outside the mapping pass through unchanged.
//
// Season exceptions: the Angels were still ANA through 2004, and Tampa Bay
// played as the Devil Rays (TBD) through 2007.
func Normalize(code string, season int) string {
	if code == "ANA" && season >= 2000 && season <= 2004 {
		return "ANA"
	}
	if code == "TBA" && season >= 2000 && season <= 2007 {
		return "TBD"
	}
	if mapped, ok := codeMap[code]; ok {
		return mapped
	}
	return code
}
