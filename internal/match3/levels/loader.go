// Package levels loads hand-built match3 boards from YAML files.
// This package depends on board but board does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/levels/formats"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level is a complete board definition.
type Level struct {
	ID       string
	Name     string
	Rows     [][]tiles.Gem
	Refill   []tiles.Gem
	Rules    board.Rules
	Turns    int
	Metadata map[string]string
	FilePath string
}

// Width returns the number of columns.
func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.Rows)
}

// NewGrid builds a grid from the level. Refills come from the level's
// refill rotation when it has one, otherwise from fallback.
func (l *Level) NewGrid(fallback board.Generator[tiles.Gem]) (*board.Grid[tiles.Gem], error) {
	gen := fallback
	if len(l.Refill) > 0 {
		gen = tiles.NewCycle(l.Refill...)
	}
	if gen == nil {
		return nil, fmt.Errorf("level %s: no refill and no fallback generator", l.ID)
	}
	return board.FromRows(gen, l.Rows, l.Rules)
}

// CapPasses sets the cascade cap to n when the level leaves it unlimited.
// A level that names its own max_passes keeps it.
func (l *Level) CapPasses(n int) {
	if l.Rules.MaxPasses == 0 && n > 0 {
		l.Rules.MaxPasses = n
	}
}

// Loader handles loading levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the boards compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}
		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(name)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Refill:   parsed.Refill,
		Rules:    parsed.Rules,
		Turns:    parsed.Turns,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.root, name),
	}, nil
}

// ErrNotFound is returned by LoadByID for an unknown ID.
var ErrNotFound = errors.New("level not found")

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Board, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Board{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
