package game

import "strconv"

// trailingWindow is the short-term form window for the rolling features.
const trailingWindow = 10

// TrailingFeatures returns a copy of a single team-season's records (in
// schedule order, home and away) with the trailing run and form features
// populated. Every feature is shifted by one game: the value for game i is
// computed over games 0..i-1 only, so it reflects state entering the game
// and never includes the game's own result. Game 0 gets 0 for everything.
//
// Runs values that fail to parse (rained-out placeholder rows and the like)
// are skipped in the means rather than poisoning them.
func TrailingFeatures(records []Record) []Record {
	out := make([]Record, len(records))

	scored := make([]float64, 0, len(records))
	scoredOK := make([]bool, 0, len(records))
	allowed := make([]float64, 0, len(records))
	allowedOK := make([]bool, 0, len(records))
	wins := make([]float64, 0, len(records))

	for i, r := range records {
		r.RunsScoredPG = expandingMean(scored, scoredOK)
		r.RunsAllowedPG = expandingMean(allowed, allowedOK)
		r.RunsScoredLast10 = rollingMean(scored, scoredOK, trailingWindow)
		r.RunsAllowedLast10 = rollingMean(allowed, allowedOK, trailingWindow)
		r.Last10WinPct = rollingMean(wins, allTrue(len(wins)), trailingWindow)
		out[i] = r

		rs, rsErr := strconv.ParseFloat(r.RunsScored, 64)
		scored = append(scored, rs)
		scoredOK = append(scoredOK, rsErr == nil)

		ra, raErr := strconv.ParseFloat(r.RunsAllowed, 64)
		allowed = append(allowed, ra)
		allowedOK = append(allowedOK, raErr == nil)

		if r.Won() {
			wins = append(wins, 1)
		} else {
			wins = append(wins, 0)
		}
	}
	return out
}

func expandingMean(vals []float64, ok []bool) float64 {
	return meanOver(vals, ok, 0)
}

func rollingMean(vals []float64, ok []bool, window int) float64 {
	start := len(vals) - window
	if start < 0 {
		start = 0
	}
	return meanOver(vals, ok, start)
}

func meanOver(vals []float64, ok []bool, start int) float64 {
	sum := 0.0
	n := 0
	for i := start; i < len(vals); i++ {
		if !ok[i] {
			continue
		}
		sum += vals[i]
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func allTrue(n int) []bool {
	ok := make([]bool, n)
	for i := range ok {
		ok[i] = true
	}
	return ok
}
