package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "vudia",
		Short:   "Music player with a terminal UI and an HTTP remote",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			serveCmd(),
			playCmd(),
			scanCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
