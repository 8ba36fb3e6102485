package gridgraph_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"TrailingNewline", "241\n321\n325\n"},
		{"NoTrailingNewline", "241\n321\n325"},
		{"CRLF", "241\r\n321\r\n325\r\n"},
		{"TrailingBlankLines", "241\n321\n325\n\n\n"},
	}
	want := [][]int{{2, 4, 1}, {3, 2, 1}, {3, 2, 5}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.ParseString(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(want, g.Values()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errs  []error
	}{
		{"Empty", "", []error{gridgraph.ErrParse, gridgraph.ErrEmptyGrid}},
		{"OnlyBlank", "\n\n", []error{gridgraph.ErrParse, gridgraph.ErrEmptyGrid}},
		{"NonDigit", "12\n1x\n", []error{gridgraph.ErrParse}},
		{"Space", "1 2\n", []error{gridgraph.ErrParse}},
		{"Ragged", "123\n12\n", []error{gridgraph.ErrParse, gridgraph.ErrNonRectangular}},
		{"BlankMiddle", "12\n\n12\n", []error{gridgraph.ErrParse, gridgraph.ErrNonRectangular}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(strings.NewReader(tc.input))
			assert.Nil(t, g)
			for _, want := range tc.errs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestParse_ErrorNamesPosition(t *testing.T) {
	_, err := gridgraph.ParseString("111\n1a1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 col 2")
}

// TestString_RoundTrip checks that rendering and re-parsing yields the same grid.
func TestParse_LongRows(t *testing.T) {
	row := strings.Repeat("7", 70000)
	g, err := gridgraph.ParseString(row + "\n" + row + "\n")
	require.NoError(t, err)
	assert.Equal(t, 70000, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 7, g.MustCost(gridgraph.Cell{Row: 1, Col: 69999}))
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := gridgraph.Parse(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, gridgraph.ErrParse)
	assert.ErrorIs(t, err, boom)
}

func TestString_RoundTrip(t *testing.T) {
	const text = "2413\n3215\n3255\n"
	g, err := gridgraph.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, text, g.String())

	again, err := gridgraph.ParseString(g.String())
	require.NoError(t, err)
	if diff := cmp.Diff(g.Values(), again.Values()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
