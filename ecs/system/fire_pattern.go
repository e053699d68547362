package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/prefabs"
)

var diagonals = [4]cp.Vector{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// FirePattern turns a random roll into an enemy bullet velocity. The mapping
// is a tengo script so it can be tuned without rebuilding; when no script is
// loaded the four diagonals are used directly.
type FirePattern struct {
	name     string
	compiled *tengo.Compiled
}

// CompileFirePattern compiles src. The script receives `roll` (int) and
// `speed` (float) and must define `dx` and `dy`.
func CompileFirePattern(name string, src []byte) (*FirePattern, error) {
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0)
	_ = script.Add("speed", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("fire pattern %s: compile: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("fire pattern %s: run: %w", name, err)
	}
	if !compiled.IsDefined("dx") || !compiled.IsDefined("dy") {
		return nil, fmt.Errorf("fire pattern %s: script must define dx and dy", name)
	}
	return &FirePattern{name: name, compiled: compiled}, nil
}

// LoadFirePattern loads the named script from prefabs. Any failure is logged
// and yields the built-in pattern.
func LoadFirePattern(name string) *FirePattern {
	if name == "" {
		return &FirePattern{}
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		log.Printf("fire pattern: %v; using diagonals", err)
		return &FirePattern{}
	}
	fp, err := CompileFirePattern(name, src)
	if err != nil {
		log.Printf("%v; using diagonals", err)
		return &FirePattern{}
	}
	return fp
}

// Velocity returns the bullet velocity for roll. Both components are always
// non-zero.
func (fp *FirePattern) Velocity(roll int, speed float64) cp.Vector {
	if fp != nil && fp.compiled != nil {
		if v, err := fp.run(roll, speed); err == nil && v.X != 0 && v.Y != 0 {
			return v
		}
	}
	if roll < 0 {
		roll = -roll
	}
	return diagonals[roll%len(diagonals)].Mult(speed)
}

func (fp *FirePattern) run(roll int, speed float64) (cp.Vector, error) {
	if err := fp.compiled.Set("roll", roll); err != nil {
		return cp.Vector{}, err
	}
	if err := fp.compiled.Set("speed", speed); err != nil {
		return cp.Vector{}, err
	}
	if err := fp.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{X: fp.compiled.Get("dx").Float(), Y: fp.compiled.Get("dy").Float()}, nil
}
