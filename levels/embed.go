package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Cell glyphs in the usual Sokoban text notation.
const (
	Wall         = '#'
	Floor        = ' '
	Goal         = '.'
	Box          = '$'
	BoxOnGoal    = '*'
	Player       = '@'
	PlayerOnGoal = '+'
)

type Level struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// Size returns the board's width (longest row) and height.
func (l *Level) Size() (int, int) {
	w := 0
	for _, r := range l.Rows {
		w = max(w, len(r))
	}
	return w, len(l.Rows)
}

// Cell returns the glyph at (x, y); cells past the end of a short row are
// floor.
func (l *Level) Cell(x, y int) byte {
	if y < 0 || y >= len(l.Rows) || x < 0 || x >= len(l.Rows[y]) {
		return Floor
	}
	return l.Rows[y][x]
}

func (l *Level) Validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("%w: %q has no rows", ErrInvalidLevel, l.Name)
	}
	players, boxes, goals := 0, 0, 0
	for y, row := range l.Rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case Player:
				players++
			case PlayerOnGoal:
				players++
				goals++
			case Box:
				boxes++
			case BoxOnGoal:
				boxes++
				goals++
			case Goal:
				goals++
			case Wall, Floor:
			default:
				return fmt.Errorf("%w: %q has unknown cell %q at %d,%d", ErrInvalidLevel, l.Name, row[x], x, y)
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: %q has %d players", ErrInvalidLevel, l.Name, players)
	}
	if boxes != goals {
		return fmt.Errorf("%w: %q has %d boxes for %d goals", ErrInvalidLevel, l.Name, boxes, goals)
	}
	return nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadAll loads every embedded level ordered by file name.
func LoadAll() ([]*Level, error) {
	names, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	sort.Strings(names)

	out := make([]*Level, 0, len(names))
	for _, name := range names {
		lvl, err := LoadLevelFromFS(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}
