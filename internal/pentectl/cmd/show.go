package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

func Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show <state>",
		Short: "Render an encoded game as a board",
		Long: heredoc.Doc(`show decodes the given game state and prints the 19x19
			board followed by the turn, the captured pairs and the result.

			Black stones are drawn as B, White stones as W. The last move
			is wrapped in brackets.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game := pente.NewGame()
			game.Decode(args[0])

			snapshot := game.Snapshot()
			logrus.Tracef("decoded %d moves", len(snapshot.History))

			return render(cmd.OutOrStdout(), &snapshot)
		},
	}
}

func render(out io.Writer, snapshot *pente.Snapshot) error {
	var sb strings.Builder

	last, hasLast := snapshot.LastMove()

	sb.WriteString("   ")
	for col := 0; col < pente.Size; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < pente.Size; row++ {
		fmt.Fprintf(&sb, "%3d", row)
		for col := 0; col < pente.Size; col++ {
			mark := cellMark(snapshot.Grid[row][col])
			if hasLast && last.Row == row && last.Col == col {
				fmt.Fprintf(&sb, " [%c", mark)
				continue
			}
			fmt.Fprintf(&sb, "  %c", mark)
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "moves: %d\n", len(snapshot.History))
	fmt.Fprintf(&sb, "turn: %s\n", snapshot.Current)
	fmt.Fprintf(&sb, "captured pairs: Black %d, White %d\n", snapshot.CapturedBlack, snapshot.CapturedWhite)

	if snapshot.Winner != "" {
		fmt.Fprintf(&sb, "state: %s (%s by %s)\n", snapshot.State, snapshot.Winner, snapshot.Method)
	} else {
		fmt.Fprintf(&sb, "state: %s\n", snapshot.State)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func cellMark(cell pente.Cell) byte {
	switch cell {
	case pente.BlackStone:
		return 'B'
	case pente.WhiteStone:
		return 'W'
	default:
		return '.'
	}
}
