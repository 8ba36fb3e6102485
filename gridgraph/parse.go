package gridgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds the length of one grid row.
const maxLineBytes = 1 << 30

// Parse reads a cost grid from r: one row per line, each byte an ASCII digit
// '0'–'9' giving that cell's cost. All rows must have equal length. A trailing
// newline is optional, trailing blank lines are ignored and "\r\n" line endings
// are accepted.
//
// Errors wrap ErrParse with the offending line and column; ragged input also
// wraps ErrNonRectangular, and input without any row wraps ErrEmptyGrid.
func Parse(r io.Reader) (*CostGrid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		row := make([]int, len(text))
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d col %d: %q is not a digit", ErrParse, line, i+1, ch)
			}
			row[i] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrParse, line+1, maxLineBytes)
		}
		return nil, fmt.Errorf("%w: reading line %d: %w", ErrParse, line+1, err)
	}

	// Drop trailing blank lines.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyGrid)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: line %d has %d cells, want %d", ErrParse, ErrNonRectangular, i+1, len(row), w)
		}
	}

	return NewCostGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*CostGrid, error) {
	return Parse(strings.NewReader(s))
}
