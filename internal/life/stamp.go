package life

import "fmt"

// Stamp is a fixed pattern of alive/dead cells that can be copied onto a grid
// at a point. The anchor marks which stamp cell lands on the target point.
type Stamp struct {
	name    string
	w, h    int
	anchorX int
	anchorY int
	cells   []uint8
}

// ParseStamp builds a Stamp from rows of '*' (alive) and '.' (dead) runes.
// All rows must share one width. The anchor defaults to the pattern center.
func ParseStamp(name string, rows []string) (Stamp, error) {
	if len(rows) == 0 {
		return Stamp{}, fmt.Errorf("life: stamp %q has no rows", name)
	}
	w := len(rows[0])
	if w == 0 {
		return Stamp{}, fmt.Errorf("life: stamp %q has an empty row", name)
	}
	st := Stamp{
		name:    name,
		w:       w,
		h:       len(rows),
		anchorX: w / 2,
		anchorY: len(rows) / 2,
		cells:   make([]uint8, w*len(rows)),
	}
	for y, row := range rows {
		if len(row) != w {
			return Stamp{}, fmt.Errorf("life: stamp %q row %d is %d wide, want %d", name, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case '*':
				st.cells[y*w+x] = 1
			case '.':
			default:
				return Stamp{}, fmt.Errorf("life: stamp %q has invalid cell %q", name, row[x])
			}
		}
	}
	return st, nil
}

// Name returns the stamp identifier.
func (s Stamp) Name() string { return s.name }

// Size returns the pattern dimensions.
func (s Stamp) Size() (int, int) { return s.w, s.h }

// At reports the pattern value at (x, y).
func (s Stamp) At(x, y int) uint8 { return s.cells[y*s.w+x] }

// The built-in pattern table. Order matters: the library cycles through it in
// this sequence.
var stampTable = []struct {
	name string
	rows []string
}{
	{"glider", []string{
		".*.",
		"..*",
		"***",
	}},
	{"blinker", []string{
		"***",
	}},
	{"beacon", []string{
		"**..",
		"**..",
		"..**",
		"..**",
	}},
	{"r-pentomino", []string{
		".**",
		"**.",
		".*.",
	}},
	{"lwss", []string{
		"*..*.",
		"....*",
		"*...*",
		".****",
	}},
}

// Library is an ordered, immutable stamp collection with a wrap-around
// cursor. It always holds at least one stamp.
type Library struct {
	stamps []Stamp
	index  int
}

// NewLibrary loads the built-in stamp table. The table is compile-time data,
// so a parse failure is a programmer error and panics.
func NewLibrary() *Library {
	l := &Library{}
	for _, e := range stampTable {
		st, err := ParseStamp(e.name, e.rows)
		if err != nil {
			panic(err)
		}
		l.stamps = append(l.stamps, st)
	}
	if len(l.stamps) == 0 {
		panic("life: stamp library is empty")
	}
	return l
}

// Len returns the number of stamps in the library.
func (l *Library) Len() int { return len(l.stamps) }

// Current returns the stamp at the cursor.
func (l *Library) Current() Stamp { return l.stamps[l.index] }

// Advance moves the cursor forward, wrapping past the end, and returns the
// new current stamp.
func (l *Library) Advance() Stamp {
	l.index = (l.index + 1) % len(l.stamps)
	return l.stamps[l.index]
}
