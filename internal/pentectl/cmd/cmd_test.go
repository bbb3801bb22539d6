package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	require.NoError(t, root.Execute())

	return out.String()
}

func TestNew(t *testing.T) {
	t.Run("Seeds the opening stone", func(t *testing.T) {
		out := run(t, "new")

		assert.Equal(t, "moves=B9,9;&current=White&capB=0&capW=0&state=playing\n", out)
	})

	t.Run("Carries the black identity", func(t *testing.T) {
		out := run(t, "new", "--black-id", "alice")

		assert.Equal(t, "moves=B9,9;&current=White&capB=0&capW=0&state=playing&blackID=alice\n", out)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Drops malformed moves and fills defaults", func(t *testing.T) {
		// Given: a state with a bad token and no counts
		input := "https://example.com/pente?moves=B9,9;X1,1;W9,10;&current=Black"

		// When: normalizing it
		out := run(t, "normalize", input)

		// Then: the canonical encoding is printed
		assert.Equal(t, "moves=B9,9;W9,10;&current=Black&capB=0&capW=0&state=playing\n", out)
	})

	t.Run("Canonical input is unchanged", func(t *testing.T) {
		input := "moves=B9,9;W9,10;&current=Black&capB=0&capW=0&state=playing"

		assert.Equal(t, input+"\n", run(t, "normalize", input))
	})

	t.Run("Requires exactly one state", func(t *testing.T) {
		root := Root()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"normalize"})

		assert.Error(t, root.Execute())
	})
}

func TestShow(t *testing.T) {
	t.Run("Renders stones, the last move and the summary", func(t *testing.T) {
		// When: showing a two move game
		out := run(t, "show", "moves=B9,9;W9,10;&current=Black&capB=1&capW=0&state=playing")

		// Then: the board has a header and 19 rows followed by the summary
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 1+19+4)

		assert.True(t, strings.HasPrefix(lines[0], "     0  1  2"))
		assert.Contains(t, lines[1+9], "  B [W")
		assert.Equal(t, "moves: 2", lines[20])
		assert.Equal(t, "turn: Black", lines[21])
		assert.Equal(t, "captured pairs: Black 1, White 0", lines[22])
		assert.Equal(t, "state: playing", lines[23])
	})

	t.Run("Reports the winner", func(t *testing.T) {
		out := run(t, "show", "moves=B9,9;&current=Black&capB=5&capW=0&state=won&winner=Black&method=fiveCaptures")

		assert.Contains(t, out, "state: won (Black by fiveCaptures)\n")
	})

	t.Run("Empty board", func(t *testing.T) {
		out := run(t, "show", "")

		board := strings.Join(strings.Split(out, "\n")[:20], "\n")
		assert.NotContains(t, board, "B")
		assert.NotContains(t, board, "[")
		assert.Contains(t, out, "moves: 0\n")
		assert.Contains(t, out, "turn: Black\n")
	})
}
