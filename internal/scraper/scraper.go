// Package scraper fetches and parses per-team season schedule tables from
// baseball-reference.
//
// Each season page carries one stats table with a fixed 21-column game row
// layout; rows with any other cell count (headers, spacers, month
// separators) are skipped. Scraping is polite: one blocking request at a
// time with a randomized 1.5-2.5s delay between requests, and a single
// bounded retry per page. A page that still fails is logged and skipped,
// leaving a gap in the output rather than aborting the run.
package scraper

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/pfrederiksen/mlb-attendance/internal/game"
	"github.com/pfrederiksen/mlb-attendance/internal/logger"
)

const (
	BaseURL   = "https://www.baseball-reference.com"
	UserAgent = "mlb-attendance/1.0 (github.com/pfrederiksen/mlb-attendance)"
	Timeout   = 30 * time.Second

	// gameRowCells is the cell count of a real game row in the stats table.
	gameRowCells = 21
)

// Scraper handles fetching and parsing baseball-reference season schedules.
type Scraper struct {
	client  *http.Client
	baseURL string
	rng     *rand.Rand
	sleep   func(time.Duration)
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   time.Sleep,
	}
}

// Years returns the seasons the pipeline scrapes: 2000-2024, excluding the
// 2020 and 2021 seasons whose attendance was restricted.
func Years() []int {
	var years []int
	for y := 2000; y <= 2024; y++ {
		if y == 2020 || y == 2021 {
			continue
		}
		years = append(years, y)
	}
	return years
}

// FetchAll scrapes every (team, year) combination in order. A failed page is
// logged with its key and skipped, so the result may have gaps.
func (s *Scraper) FetchAll(teams []string, years []int) []game.Record {
	var all []game.Record
	for _, team := range teams {
		for _, year := range years {
			records, err := s.FetchSeason(team, year)
			if err != nil {
				logger.Error("Scrape failed, skipping season", logger.Fields{
					"team": team,
					"year": year,
				}, err)
			} else {
				logger.Info("Scraped season", logger.Fields{
					"team":  team,
					"year":  year,
					"games": len(records),
				})
				all = append(all, records...)
			}
			s.politePause()
		}
	}
	return all
}

// FetchSeason fetches and parses one team's season schedule. The request is
// retried once before giving up.
func (s *Scraper) FetchSeason(team string, year int) ([]game.Record, error) {
	url := fmt.Sprintf("%s/teams/%s/%d-schedule-scores.shtml", s.baseURL, team, year)

	var body []byte
	fetch := func() error {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	if err := backoff.Retry(fetch, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1)); err != nil {
		return nil, err
	}

	return s.parseSeason(strings.NewReader(string(body)), team, year)
}

var parenPattern = regexp.MustCompile(`\(.*\)`)

// parseSeason extracts the season's game records from schedule page HTML.
func (s *Scraper) parseSeason(r io.Reader, team string, year int) ([]game.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table.stats_table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no stats table found for %s %d", team, year)
	}

	var records []game.Record
	var parseErr error
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if parseErr != nil {
			return
		}
		cells := row.Find("td")
		if cells.Length() != gameRowCells {
			return
		}
		texts := make([]string, 0, gameRowCells)
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})

		rec, err := rowToRecord(texts, team, year)
		if err != nil {
			parseErr = err
			return
		}
		records = append(records, rec)
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return finishSeason(records), nil
}

// rowToRecord maps one 21-cell table row onto a Record. Standings fields
// keep their post-game values here; finishSeason shifts them.
func rowToRecord(cells []string, team string, year int) (game.Record, error) {
	dateText := cells[0]
	dh := 0
	if strings.Contains(dateText, "(") {
		dh = 1
	}
	date, err := parseGameDate(dateText, year)
	if err != nil {
		return game.Record{}, err
	}

	return game.Record{
		Date:           date,
		Boxscore:       cells[1],
		Team:           team,
		Home:           !strings.Contains(cells[3], "@"),
		Opponent:       cells[4],
		Result:         cells[5],
		RunsScored:     cells[6],
		RunsAllowed:    cells[7],
		Innings:        cells[8],
		Record:         cells[9],
		DivisionRank:   cells[10],
		GamesBehind:    cells[11],
		WinningPitcher: cells[12],
		LosingPitcher:  cells[13],
		Save:           cells[14],
		Duration:       cells[15],
		DayNight:       cells[16],
		Attendance:     cells[17],
		CLI:            cells[18],
		Streak:         cells[19],
		OrigScheduled:  cells[20],
		Doubleheader:   dh,
	}, nil
}

// parseGameDate parses schedule dates like "Thursday, Apr 3" or
// "Saturday, Jul 8 (1)", which carry no year of their own.
func parseGameDate(text string, year int) (time.Time, error) {
	text = strings.TrimSpace(parenPattern.ReplaceAllString(text, ""))
	if i := strings.Index(text, ", "); i >= 0 {
		text = text[i+2:]
	}
	date, err := time.Parse("Jan 2 2006", fmt.Sprintf("%s %d", text, year))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing game date %q: %w", text, err)
	}
	return date, nil
}

// finishSeason applies the per-season derivations: shifting standings
// fields to their entering-game values, computing trailing features over
// the full schedule, filtering to home games, and flagging the home opener.
func finishSeason(records []game.Record) []game.Record {
	shifted := make([]game.Record, len(records))
	for i, r := range records {
		if i == 0 {
			r.DivisionRank = "0"
			r.Streak = ""
			r.GamesBehind = "0"
			r.Record = "0-0"
		} else {
			prev := records[i-1]
			r.DivisionRank = prev.DivisionRank
			r.Streak = prev.Streak
			r.GamesBehind = prev.GamesBehind
			r.Record = prev.Record
		}
		shifted[i] = r
	}

	shifted = game.TrailingFeatures(shifted)

	var home []game.Record
	for _, r := range shifted {
		if r.Home {
			home = append(home, r)
		}
	}

	if len(home) > 0 {
		opener := home[0].Date
		for _, r := range home {
			if r.Date.Before(opener) {
				opener = r.Date
			}
		}
		for i := range home {
			if home[i].Date.Equal(opener) {
				home[i].OpeningDay = 1
			}
		}
	}
	return home
}

// politePause sleeps a random 1.5-2.5s between page fetches.
func (s *Scraper) politePause() {
	delay := 1500 + s.rng.Intn(1000)
	s.sleep(time.Duration(delay) * time.Millisecond)
}
