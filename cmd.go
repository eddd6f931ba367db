package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	flagDebug bool
	flagCode  bool
)

var rootCmd = &cobra.Command{
	Use:   "jot [input...]",
	Short: "Capture a note to your daily doc",
	Long: `Jot posts a note to the end of today's doc in your document service.

The note text comes from the positional arguments, or from stdin when
none are given and something is piped in. Credentials are read from
JOT_API_KEY and JOT_API_URL, falling back to the config file.`,
	Example: `  jot "remember to rotate the deploy key"
  kubectl get pods | jot --code`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print debug diagnostics")
	rootCmd.Flags().BoolVarP(&flagCode, "code", "c", false, "wrap the note in a fenced code block")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrln(cmd.UsageString())
		return err
	})
}

// run is the whole pipeline: resolve credentials, collect input, build
// the payload, send it. First failure wins and surfaces in main.
func run(cmd *cobra.Command, args []string) error {
	log := NewLogger(flagDebug || os.Getenv(envDebug) != "")
	creds, err := ResolveCredentials(afero.NewOsFs(), os.Getenv)
	if err != nil {
		return err
	}
	log.Debugf("using endpoint %s", creds.APIURL)
	text, err := CollectInput(args, cmd.InOrStdin(), stdinIsTerminal())
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			cmd.PrintErrln(cmd.UsageString())
		}
		return err
	}
	payload, err := BuildPayload(NewCaptureRequest(text, flagCode))
	if err != nil {
		return fmt.Errorf("building payload: %w", err)
	}
	if err := NewClient(nil, creds, log).CreateBlocks(payload); err != nil {
		return err
	}
	log.Infof("note captured")
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
