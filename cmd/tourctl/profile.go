package main

import (
	"maps"
	"os"
	"slices"

	"github.com/pkg/profile"

	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/enumflag"
)

const (
	profileEnv     = "TOURCTL_PROFILE"
	profilePathEnv = "TOURCTL_PROFILE_PATH"
)

// profileModes are the profiles worth comparing the two searches with.
var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"alloc": profile.MemProfileAllocs,
	"heap":  profile.MemProfileHeap,
	"trace": profile.TraceProfile,
}

var (
	profileFlag     = enumflag.New(os.Getenv(profileEnv), slices.Collect(maps.Keys(profileModes)))
	profilePathFlag *string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Var(profileFlag, "profile", profileFlag.DocString("Profile the command"))
	profilePathFlag = flags.String("profilePath", os.Getenv(profilePathEnv), "Directory for profile output, default .")
}

type stopper interface{ Stop() }

type noopStop struct{}

func (noopStop) Stop() {}

// StartProfile starts the profile chosen by --profile.
func StartProfile() stopper {
	return startProfile(profileFlag.String(), *profilePathFlag)
}

// startProfile starts a profile of the given mode writing into dir.
// An empty or unknown mode returns a no-op stopper.
func startProfile(mode, dir string) stopper {
	opt, ok := profileModes[mode]
	if !ok {
		return noopStop{}
	}
	if dir == "" {
		dir = "."
	}
	return profile.Start(opt, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
}
