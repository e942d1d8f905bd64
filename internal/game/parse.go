package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWinLossRecord parses a cumulative "W-L" record string into wins and
// losses, e.g. "45-30" -> (45, 30).
func ParseWinLossRecord(s string) (wins, losses int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid record %q: want W-L", s)
	}
	wins, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid record %q: wins not numeric", s)
	}
	losses, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid record %q: losses not numeric", s)
	}
	return wins, losses, nil
}

// WinPct computes the winning percentage for a record. A 0-0 record (the
// pre-season placeholder) is 0, not NaN.
func WinPct(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses)
}

// ParseStreak converts a streak marker string into a signed integer: the
// magnitude is the run length and the sign follows the marker, so "+++" is
// +3, "--" is -2, and an empty string is 0.
func ParseStreak(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	sign := 0
	for _, c := range s {
		switch c {
		case '+':
			if sign < 0 {
				return 0, fmt.Errorf("invalid streak %q: mixed markers", s)
			}
			sign = 1
		case '-':
			if sign > 0 {
				return 0, fmt.Errorf("invalid streak %q: mixed markers", s)
			}
			sign = -1
		default:
			return 0, fmt.Errorf("invalid streak %q: unexpected character %q", s, c)
		}
	}
	return sign * len(s), nil
}

// ParseGamesBehind parses a games-behind string. "Tied" and "0" are 0;
// an "up" marker means the team leads the division, encoded as negative
// ("up 3.5" -> -3.5); anything else is the literal deficit ("2.5" -> 2.5).
func ParseGamesBehind(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "Tied" || s == "0" {
		return 0, nil
	}
	if strings.Contains(s, "up") {
		mag := strings.TrimSpace(strings.ReplaceAll(s, "up", ""))
		v, err := strconv.ParseFloat(mag, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid games behind %q", s)
		}
		return -v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid games behind %q", s)
	}
	return v, nil
}

// ParseAttendance parses an attendance figure, stripping thousands
// separators ("41,172" -> 41172). Empty or non-numeric input is an error.
func ParseAttendance(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("missing attendance")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid attendance %q", s)
	}
	return v, nil
}
