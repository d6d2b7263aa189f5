package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain dispatches to a subcommand and returns the process exit code.
// The bare invocation with a document path is the convert action.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "doctor":
			return runDoctorCmd(args[1:], env)
		case "version", "--version":
			fmt.Fprintf(env.Stdout, "tex2mobi %s\n", Version)
			return ExitSuccess
		case "help", "--help", "-h":
			printUsage(env.Stdout)
			return ExitSuccess
		}
	}

	if err := runConvert(args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
