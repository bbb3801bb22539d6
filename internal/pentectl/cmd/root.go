package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "pentectl",
		Short: "Inspect encoded Pente game states",
		Long: heredoc.Doc(`pentectl works with the query string a Pente game is
			exchanged in between two players, for example

			  moves=B9,9;W9,10;&current=Black&capB=0&capW=0&state=playing

			It accepts the bare query, a "?query" or a whole URL.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Show())
	root.AddCommand(Normalize())
	root.AddCommand(New())

	return root
}
