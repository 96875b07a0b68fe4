package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/must"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations of the distance table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		c := must.Must1(settings(cmd))
		must.Must(listLocations(cmd.OutOrStdout(), c))
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}

func listLocations(w io.Writer, c config.Config) error {
	if c.Table == "" {
		return errNoTable
	}
	t, err := distance.LoadCSVFile(c.Table)
	if err != nil {
		return err
	}
	pr, err := newPrinter(w, c.Output)
	if err != nil {
		return err
	}

	return pr.Print(t.Rows())
}
