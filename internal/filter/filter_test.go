package filter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestCapacity(t *testing.T) {
	in := writeTemp(t, "capacity.csv", `Team,Year,Stadium,Capacity
NYY,1998,Yankee Stadium,57545
NYY,1999,Yankee Stadium,57545
NYY,2000,Yankee Stadium,57545
BOS,2003,Fenway Park,34500
`)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	n, err := Capacity(in, out)
	if err != nil {
		t.Fatalf("Capacity failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 surviving rows, got %d", n)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "1998") || strings.Contains(content, "1999") {
		t.Errorf("output still contains pre-2000 rows:\n%s", content)
	}
	if !strings.Contains(content, "2000") || !strings.Contains(content, "2003") {
		t.Errorf("output missing 2000+ rows:\n%s", content)
	}
}

func TestRetrosheet(t *testing.T) {
	in := writeTemp(t, "gameinfo.csv", `date,hometeam,season,number,precip,sky,temp,windspeed
19990704,NYA,1999,0,none,sunny,85,10
20000704,NYA,2000,0,none,sunny,88,12
20010704,NYA,2001,0,rain,cloudy,75,8
`)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	n, err := Retrosheet(in, out)
	if err != nil {
		t.Fatalf("Retrosheet failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 surviving rows, got %d", n)
	}
}

func TestByYearMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	if _, err := Capacity(filepath.Join(t.TempDir(), "nope.csv"), out); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestByYearMissingColumn(t *testing.T) {
	in := writeTemp(t, "bad.csv", "a,b\n1,2\n")
	out := filepath.Join(t.TempDir(), "out.csv")
	if _, err := Capacity(in, out); err == nil {
		t.Error("expected error for missing Year column")
	}
}
