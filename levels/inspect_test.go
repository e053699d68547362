package levels

import (
	"strings"
	"testing"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name       string
		grid       []string
		wantIssues []string
	}{
		{name: "clean", grid: []string{"WWWW", "WK W", "W DW", "WWWW"}},
		{name: "ragged", grid: []string{"WWWW", "WKD", "W  W"}, wantIssues: []string{"row 1 has 3 tiles"}},
		{name: "no key or door", grid: []string{"WW", "WW"}, wantIssues: []string{"no key", "no door"}},
		{name: "two keys", grid: []string{"KK  D"}, wantIssues: []string{"2 key markers"}},
		{name: "spawn in wall", grid: []string{"       ", "       ", "  W K D"}, wantIssues: []string{"spawn overlaps wall at column 2 row 2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Inspect(tc.name, tc.grid, 50, Point{X: 100, Y: 100}, 40, 40)
			if len(r.Issues) != len(tc.wantIssues) {
				t.Fatalf("issues = %q, want %d matching %q", r.Issues, len(tc.wantIssues), tc.wantIssues)
			}
			for i, want := range tc.wantIssues {
				if !strings.Contains(r.Issues[i], want) {
					t.Fatalf("issue %d = %q, want it to contain %q", i, r.Issues[i], want)
				}
			}
		})
	}
}

func TestInspectCampaignHasKeysAndDoors(t *testing.T) {
	c, err := LoadCampaign()
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}
	for _, lvl := range c.Levels {
		r := Inspect(lvl.Name, lvl.Grid, c.TileSize, c.Spawn, 40, 40)
		if r.Layout.Key == nil || r.Layout.Door == nil {
			t.Fatalf("%s: key=%v door=%v", lvl.Name, r.Layout.Key, r.Layout.Door)
		}
	}
}
