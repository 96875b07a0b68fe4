// Command tourctl plans a closed tour over a selection of locations from a
// CSV distance table, using depth-first or breadth-first search.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/enumflag"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/logging"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/must"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

const configEnv = "TOURCTL_CONFIG"

var (
	rootCmd = &cobra.Command{
		Use:           "tourctl",
		Short:         "Plan a closed tour over locations in a distance table",
		SilenceErrors: true, // main prints the error
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			profiler = StartProfile()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			profiler.Stop()
		},
	}
	log = logging.Log()

	profiler stopper = noopStop{}

	// Global flags
	verbose     *int
	configPath  *string
	outputFlag  = enumflag.New("", append([]string(nil), config.Outputs...))
	tableFlag   *string
	startFlag   *string
	minFlag     *int
	maxFlag     *int
	metricsFlag *string
	panicOnErr  *bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	panicOnErr = flags.Bool("panic", false, "panic on error instead of exit code 1")
	verbose = flags.IntP("verbose", "v", 0, "Verbosity for logging")
	configPath = flags.StringP("config", "c", os.Getenv(configEnv), "YAML configuration file")
	flags.VarP(outputFlag, "output", "o", outputFlag.DocString("Output format, default yaml"))
	tableFlag = flags.StringP("table", "t", "", "CSV distance table")
	startFlag = flags.StringP("start", "s", "", "Start location, default the first selected")
	minFlag = flags.Int("min", tsp.DefaultMinLocations, "Minimum number of selected locations")
	maxFlag = flags.Int("max", config.DefaultMaxLocations, "Maximum number of selected locations, 0 for no limit")
	metricsFlag = flags.String("metrics-file", "", "Write Prometheus metrics of each run to this textfile")

	rootCmd.Version = version
	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			profiler.Stop()
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
