package rle

import (
	"strconv"
	"strings"

	"life-rle/pkg/core"
)

// LineWidth is the maximum number of body characters per output line.
const LineWidth = 70

// Encode renders b as RLE text: a header line followed by the wrapped body.
func Encode(b *core.Board) string {
	rows, cols := b.Rows(), b.Cols()
	cells := b.Cells()

	var body strings.Builder
	for r := 0; r < rows; r++ {
		encodeRow(&body, cells[r*cols:(r+1)*cols])
		if r == rows-1 {
			body.WriteByte('!')
		} else {
			body.WriteByte('$')
		}
	}

	var out strings.Builder
	out.WriteString(header(cols, rows))
	out.WriteByte('\n')
	wrap(&out, body.String(), LineWidth)
	return out.String()
}

func header(cols, rows int) string {
	return "x = " + strconv.Itoa(cols) + ", y = " + strconv.Itoa(rows)
}

// encodeRow writes the runs of one row, dropping the trailing dead run.
func encodeRow(sb *strings.Builder, row []bool) {
	end := len(row)
	for end > 0 && !row[end-1] {
		end--
	}
	for i := 0; i < end; {
		j := i + 1
		for j < end && row[j] == row[i] {
			j++
		}
		writeRun(sb, j-i, row[i])
		i = j
	}
}

func writeRun(sb *strings.Builder, n int, alive bool) {
	if n > 1 {
		sb.WriteString(strconv.Itoa(n))
	}
	if alive {
		sb.WriteByte('o')
	} else {
		sb.WriteByte('b')
	}
}

func wrap(sb *strings.Builder, body string, width int) {
	for len(body) > width {
		sb.WriteString(body[:width])
		sb.WriteByte('\n')
		body = body[width:]
	}
	sb.WriteString(body)
}
