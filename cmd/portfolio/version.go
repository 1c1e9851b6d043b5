package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

// versionLine formats the first line of --version output.
func versionLine() string {
	line := "portfolio version " + Version
	if Build != "unknown" && Build != "" {
		line += fmt.Sprintf(" (build: %s)", Build)
	}
	if BuildTime != "" {
		line += fmt.Sprintf(" [%s]", BuildTime)
	}
	return line
}

// printVersion writes the version, toolchain and platform to w. Development
// builds also report the VCS revision when the toolchain recorded one.
func printVersion(w io.Writer) {
	fmt.Fprintln(w, versionLine())
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
			fmt.Fprintf(w, "Commit: %s\n", setting.Value[:7])
			return
		}
	}
}
