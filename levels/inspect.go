package levels

import (
	"fmt"
	"strings"
)

// Report describes one grid: what it contains and anything that looks
// wrong. None of the issues stop the grid from loading.
type Report struct {
	Name   string
	Layout Layout
	Issues []string
}

// Inspect parses grid and lists irregularities: ragged rows, missing or
// repeated key and door markers, and a spawn point inside a wall.
func Inspect(name string, grid []string, tileSize float64, spawn Point, spawnW, spawnH float64) Report {
	r := Report{Name: name, Layout: Parse(grid, tileSize)}

	width := -1
	for i, row := range grid {
		n := len([]rune(row))
		if width >= 0 && n != width {
			r.Issues = append(r.Issues, fmt.Sprintf("row %d has %d tiles, row 0 has %d", i, n, width))
		}
		if width < 0 {
			width = n
		}
	}

	for _, marker := range []struct {
		ch   string
		name string
	}{{"K", "key"}, {"D", "door"}} {
		n := 0
		for _, row := range grid {
			n += strings.Count(row, marker.ch)
		}
		switch {
		case n == 0:
			r.Issues = append(r.Issues, "no "+marker.name)
		case n > 1:
			r.Issues = append(r.Issues, fmt.Sprintf("%d %s markers, the last one wins", n, marker.name))
		}
	}

	for _, wall := range r.Layout.Walls {
		if spawn.X < wall.X+tileSize && spawn.X+spawnW > wall.X &&
			spawn.Y < wall.Y+tileSize && spawn.Y+spawnH > wall.Y {
			r.Issues = append(r.Issues, fmt.Sprintf("spawn overlaps wall at column %d row %d", wall.Col, wall.Row))
			break
		}
	}
	return r
}
