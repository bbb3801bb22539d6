package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print the encoding of a new game",
		Long: heredoc.Doc(`new prints the state of a freshly started game: Black's
			opening stone on the center point and White to move.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			blackID, err := cmd.Flags().GetString("black-id")
			if err != nil {
				return err
			}

			game := pente.NewGame()
			game.StartNewGame(blackID)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), game.Encode())
			return err
		},
	}

	cmd.Flags().String("black-id", "", "Identity of the player with the black stones")

	return cmd
}
