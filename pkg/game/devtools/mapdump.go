// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a tile (no entity overlay).
func cellSymbol(t world.Tile) rune {
	switch t {
	case world.Open:
		return '.'
	case world.Exit:
		return 'E'
	default:
		return '#'
	}
}

// writeMapGrid writes the grid with player, enemy and portal overlays.
// The player wins over enemies, enemies win over portals.
func writeMapGrid(w io.Writer, l *state.Level) {
	overlay := make(map[world.Position]rune)
	for _, p := range l.PortalEndpoints() {
		overlay[p] = 'O'
	}
	for _, e := range l.Enemies {
		overlay[e.Pos] = 'X'
	}
	overlay[l.Player] = '@'

	for y := 0; y < l.Grid.Rows(); y++ {
		for x := 0; x < l.Grid.Cols(); x++ {
			p := world.Pos(x, y)
			if r, ok := overlay[p]; ok {
				fmt.Fprintf(w, "%c", r)
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(l.Grid.Tile(p)))
		}
		fmt.Fprintln(w)
	}
}

// WriteMap writes a full debug dump of the level: metadata, legend, map and
// entity lists. Format is human-readable (sections, key: value).
func WriteMap(w io.Writer, l *state.Level) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("no grid")
	}

	bw := bufio.NewWriter(w)

	elapsed := l.Elapsed
	if l.Clock != nil && !l.Outcome.Terminal() {
		elapsed = l.ElapsedAt(l.Clock.Now())
	}

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (maze layout, entities) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "tier: %s\n", l.Tier.Name)
	fmt.Fprintf(bw, "mode: %s\n", l.Mode.Name)
	fmt.Fprintf(bw, "grid_rows: %d\n", l.Grid.Rows())
	fmt.Fprintf(bw, "grid_cols: %d\n", l.Grid.Cols())
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=column, y=row)")
	fmt.Fprintf(bw, "generator: %s\n", l.Grid.Info.Generator)
	fmt.Fprintf(bw, "carve_steps: %d\n", l.Grid.Info.CarveSteps)
	fmt.Fprintf(bw, "degenerate: %t\n", l.Grid.Info.Degenerate)
	fmt.Fprintf(bw, "start: %s\n", l.Grid.Start())
	fmt.Fprintf(bw, "exit: %s\n", l.Grid.Exit())
	fmt.Fprintf(bw, "player: %s\n", l.Player)
	fmt.Fprintf(bw, "ticks: %d\n", l.Ticks)
	fmt.Fprintf(bw, "elapsed: %.2fs\n", elapsed.Seconds())
	fmt.Fprintf(bw, "outcome: %s\n", l.Outcome)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, "# wall  . open  E exit  @ player  X enemy  O portal")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, l)
	fmt.Fprintln(bw, "")

	// --- Entities ---
	fmt.Fprintf(bw, "--- Enemies (%d) ---\n", len(l.Enemies))
	for i, e := range l.Enemies {
		fmt.Fprintf(bw, "enemy[%d]: %s\n", i, e.Pos)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "--- Portals (%d) ---\n", len(l.Portals))
	for i, p := range l.Portals {
		fmt.Fprintf(bw, "portal[%d]: %s <-> %s\n", i, p.A, p.B)
	}

	return bw.Flush()
}

// DumpMapToFile writes the debug dump to map.txt in dir and returns its
// absolute path. An empty dir means the working directory.
func DumpMapToFile(l *state.Level, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMap(f, l); err != nil {
		return "", err
	}
	return absPath, nil
}
