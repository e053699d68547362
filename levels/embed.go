package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNoLevels = errors.New("levels: campaign has no levels")

// Campaign is the ordered list of levels played in one session.
type Campaign struct {
	TileSize float64 `json:"tile_size"`
	Spawn    Point   `json:"spawn"`
	Levels   []Level `json:"levels"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Level is one character grid. Rows may differ in length.
type Level struct {
	Name string   `json:"name"`
	Grid []string `json:"grid"`
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

// Layout parses level i with the campaign tile size.
func (c *Campaign) Layout(i int) (Layout, error) {
	if c == nil || i < 0 || i >= len(c.Levels) {
		return Layout{}, fmt.Errorf("levels: index %d out of range [0,%d)", i, c.Len())
	}
	return Parse(c.Levels[i].Grid, c.TileSize), nil
}

// LoadCampaign reads the embedded campaign.
func LoadCampaign() (*Campaign, error) {
	return LoadCampaignFromFS(LevelsFS, "campaign.json")
}

func LoadCampaignFromFS(fsys fs.FS, name string) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read campaign: %w", err)
	}
	var c Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal campaign: %w", err)
	}
	if len(c.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if c.TileSize <= 0 {
		return nil, fmt.Errorf("levels: tile_size must be positive, got %v", c.TileSize)
	}
	return &c, nil
}
