package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

func Normalize() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <state>",
		Short: "Print the canonical encoding of a game state",
		Long: heredoc.Doc(`normalize decodes the given game state and encodes it
			again. Malformed moves are dropped, unknown fields are
			ignored and missing fields take their defaults.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game := pente.NewGame()
			game.Decode(args[0])

			encoded := game.Encode()
			if encoded != args[0] {
				logrus.Debugf("input was not canonical: %q", args[0])
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return err
		},
	}
}
