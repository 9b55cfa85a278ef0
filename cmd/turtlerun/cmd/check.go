package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtle-script/turtle"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate emitted instructions",
	Long: `Reads a file of emitted instructions ("-" for stdin) and checks every line
against the output format: pu, pd, fd <number>, rt <number>.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() { _ = file.Close() }()
		in = file
	}
	return checkScript(in, cmd.OutOrStdout())
}

func checkScript(r io.Reader, w io.Writer) error {
	cmds, err := turtle.ParseScript(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d commands\n", len(cmds))
	return nil
}
