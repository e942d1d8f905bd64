package game

import "time"

type dayTeam struct {
	date time.Time
	team string
}

// AssignSequences returns a copy of records with each record's Seq set to
// disambiguate same-day games by the same team. A team's only game of a date
// gets 0; doubleheader games get 1, 2, ... in input order. Input order is
// assumed to reflect game order, as schedule tables list games that way.
//
// Sequence numbers are join keys for the weather merge and carry no other
// meaning.
func AssignSequences(records []Record) []Record {
	counts := make(map[dayTeam]int, len(records))
	for _, r := range records {
		counts[dayTeam{r.Date, r.Team}]++
	}

	out := make([]Record, len(records))
	seen := make(map[dayTeam]int, len(records))
	for i, r := range records {
		key := dayTeam{r.Date, r.Team}
		if counts[key] > 1 {
			seen[key]++
			r.Seq = seen[key]
		} else {
			r.Seq = 0
		}
		out[i] = r
	}
	return out
}
