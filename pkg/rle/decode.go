package rle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"life-rle/pkg/core"
)

// ErrInvalidFormat is returned when text is not a well-formed RLE pattern or
// does not fit the dimensions declared in its header.
var ErrInvalidFormat = errors.New("rle: invalid format")

// MaxCells bounds x*y so a hostile header cannot force a huge allocation.
const MaxCells = 1 << 26

// maxCount bounds a single run length.
const maxCount = 1 << 30

var headerPattern = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)\s*(?:,(.*))?$`)

// Pattern is a decoded RLE document.
type Pattern struct {
	Board *core.Board
	// Extras holds additional header fields such as "rule".
	Extras map[string]string
	// Comments holds the '#' lines preceding the header, without the '#'.
	Comments []string
}

// Decode parses RLE text into a board of exactly y rows by x columns.
func Decode(text string) (*core.Board, error) {
	p, err := DecodePattern(text)
	if err != nil {
		return nil, err
	}
	return p.Board, nil
}

// DecodePattern parses RLE text, keeping header extras and comments. The whole
// input is validated before the board is allocated.
func DecodePattern(text string) (*Pattern, error) {
	lines := strings.Split(text, "\n")
	p := &Pattern{Extras: map[string]string{}}

	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			p.Comments = append(p.Comments, strings.TrimPrefix(line, "#"))
			continue
		}
		break
	}
	if i == len(lines) {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidFormat)
	}

	cols, rows, err := parseHeader(strings.TrimSpace(lines[i]), p.Extras)
	if err != nil {
		return nil, err
	}
	body, err := parseBody(strings.Join(lines[i+1:], "\n"), cols, rows)
	if err != nil {
		return nil, err
	}

	board, err := core.NewBoard(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	cells := board.Cells()
	for r, runs := range body {
		c := 0
		for _, rn := range runs {
			if rn.alive {
				for k := 0; k < rn.n; k++ {
					cells[r*cols+c+k] = true
				}
			}
			c += rn.n
		}
	}
	p.Board = board
	return p, nil
}

func parseHeader(line string, extras map[string]string) (cols, rows int, err error) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: malformed header %q", ErrInvalidFormat, line)
	}
	cols, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q: %v", ErrInvalidFormat, m[1], err)
	}
	rows, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q: %v", ErrInvalidFormat, m[2], err)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: empty pattern x = %d, y = %d", ErrInvalidFormat, cols, rows)
	}
	if cols > MaxCells/rows {
		return 0, 0, fmt.Errorf("%w: pattern %dx%d exceeds %d cells", ErrInvalidFormat, cols, rows, MaxCells)
	}
	if m[3] == "" {
		return cols, rows, nil
	}
	for _, field := range strings.Split(m[3], ",") {
		key, value, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return 0, 0, fmt.Errorf("%w: malformed header field %q", ErrInvalidFormat, strings.TrimSpace(field))
		}
		extras[key] = strings.TrimSpace(value)
	}
	return cols, rows, nil
}

type run struct {
	n     int
	alive bool
}

// parseBody splits the body into per-row runs. Line breaks are dropped, the
// body ends at the first '!' and rows are separated by '$'. Rows past the
// declared height must still fit the width; their cells are discarded.
func parseBody(body string, cols, rows int) ([][]run, error) {
	body = lineBreaks.Replace(body)
	if i := strings.IndexByte(body, '!'); i >= 0 {
		body = body[:i]
	}
	lines := strings.Split(body, "$")
	if len(lines) < rows {
		return nil, fmt.Errorf("%w: body has %d rows, header declares y = %d", ErrInvalidFormat, len(lines), rows)
	}

	out := make([][]run, rows)
	for r, line := range lines {
		runs, err := parseRow(line, r, cols)
		if err != nil {
			return nil, err
		}
		if r < rows {
			out[r] = runs
		}
	}
	return out, nil
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// parseRow expands the (\d*)(.) tokens of one row. A count that runs to the
// end of the row leaves its last digit as the cell character.
func parseRow(line string, row, cols int) ([]run, error) {
	rs := []rune(line)
	var runs []run
	width := 0
	for i := 0; i < len(rs); {
		j := i
		for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
			j++
		}
		if j == len(rs) {
			j--
		}

		n := 1
		if j > i {
			n = 0
			for _, d := range rs[i:j] {
				digit := int(d - '0')
				if n > (maxCount-digit)/10 {
					return nil, fmt.Errorf("%w: run length too large on row %d", ErrInvalidFormat, row)
				}
				n = n*10 + digit
			}
		}

		width += n
		if width > cols {
			return nil, fmt.Errorf("%w: row %d is wider than x = %d", ErrInvalidFormat, row, cols)
		}
		if n > 0 {
			runs = append(runs, run{n: n, alive: rs[j] == 'o'})
		}
		i = j + 1
	}
	return runs, nil
}
