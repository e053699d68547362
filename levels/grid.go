package levels

// TileKind is what a grid character turns into.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TileAmplifyingWall
	TileAbsorbingWall
	TileWeakEnemy
	TileStrongEnemy
	TileKey
	TileDoor
	TileHealthPack
	TileBonus
)

var tileMapping = map[rune]TileKind{
	'W': TileWall,
	'A': TileAmplifyingWall,
	'P': TileAbsorbingWall,
	'E': TileWeakEnemy,
	'B': TileStrongEnemy,
	'K': TileKey,
	'D': TileDoor,
	'H': TileHealthPack,
	'X': TileBonus,
}

// KindOf maps a grid character. Anything unknown is floor.
func KindOf(ch rune) TileKind {
	if kind, ok := tileMapping[ch]; ok {
		return kind
	}
	return TileEmpty
}

// Tile is a placed marker. X and Y are the top-left corner in world units.
type Tile struct {
	Kind TileKind
	Col  int
	Row  int
	X    float64
	Y    float64
}

// Layout is everything a grid describes, grouped by role.
type Layout struct {
	TileSize    float64
	Walls       []Tile
	Enemies     []Tile
	HealthPacks []Tile
	Bonuses     []Tile
	Key         *Tile
	Door        *Tile
	Cols        int
	Rows        int
}

// Parse converts a character grid into a layout. Short or ragged rows simply
// yield fewer tiles. A repeated key or door marker replaces the earlier one.
func Parse(grid []string, tileSize float64) Layout {
	out := Layout{TileSize: tileSize, Rows: len(grid)}
	for row, line := range grid {
		col := 0
		for _, ch := range line {
			kind := KindOf(ch)
			if kind != TileEmpty {
				tile := Tile{
					Kind: kind,
					Col:  col,
					Row:  row,
					X:    float64(col) * tileSize,
					Y:    float64(row) * tileSize,
				}
				switch kind {
				case TileWall, TileAmplifyingWall, TileAbsorbingWall:
					out.Walls = append(out.Walls, tile)
				case TileWeakEnemy, TileStrongEnemy:
					out.Enemies = append(out.Enemies, tile)
				case TileHealthPack:
					out.HealthPacks = append(out.HealthPacks, tile)
				case TileBonus:
					out.Bonuses = append(out.Bonuses, tile)
				case TileKey:
					t := tile
					out.Key = &t
				case TileDoor:
					t := tile
					out.Door = &t
				}
			}
			col++
		}
		if col > out.Cols {
			out.Cols = col
		}
	}
	return out
}

// Count returns how many tiles of kind the layout holds.
func (l Layout) Count(kind TileKind) int {
	n := 0
	for _, group := range [][]Tile{l.Walls, l.Enemies, l.HealthPacks, l.Bonuses} {
		for _, t := range group {
			if t.Kind == kind {
				n++
			}
		}
	}
	if kind == TileKey && l.Key != nil {
		n++
	}
	if kind == TileDoor && l.Door != nil {
		n++
	}
	return n
}
