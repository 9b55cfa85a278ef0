package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtle-script/internal/audit"
	"github.com/turtle-script/internal/commands"
	"github.com/turtle-script/internal/config"
	"github.com/turtle-script/internal/script"
	"github.com/turtle-script/turtle"
)

var (
	outPath string
	strict  bool
	lenient bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Emit the instructions of a script",
	Long: `Runs a text (.turtle, .txt) or YAML (.yaml, .yml) script and writes the
emitted instructions to stdout or to the configured output file.

In strict mode the first bad step aborts the run; in lenient mode bad steps
are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", `output file ("-" for stdout)`)
	runCmd.Flags().BoolVar(&strict, "strict", false, "stop at the first bad step")
	runCmd.Flags().BoolVar(&lenient, "lenient", false, "skip bad steps")
	runCmd.MarkFlagsMutuallyExclusive("strict", "lenient")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if outPath != "" {
		cfg.Output.Path = outPath
	}
	switch {
	case strict:
		cfg.Mode = config.ModeStrict
	case lenient:
		cfg.Mode = config.ModeLenient
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := runScript(ctx, cfg, args[0], cmd.OutOrStdout(), verbose)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("done: %d executed, %d skipped", res.Executed, res.Skipped)
	}
	return nil
}

// runScript loads the script at path and runs it against an emitter writing
// to stdout or to cfg.Output.Path.
func runScript(ctx context.Context, cfg *config.Config, path string, stdout io.Writer, verbose bool) (script.Result, error) {
	steps, err := script.LoadFile(path)
	if err != nil {
		return script.Result{}, err
	}

	w := stdout
	if cfg.Output.Path != config.StdoutPath {
		file, err := os.Create(cfg.Output.Path)
		if err != nil {
			return script.Result{}, fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}

	var opts []turtle.Option
	if cfg.Transcript.Enabled {
		transcript, err := audit.NewLogger(cfg.Transcript)
		if err != nil {
			return script.Result{}, err
		}
		defer func() {
			if verbose {
				log.Printf("transcript: %d entries", transcript.Steps())
			}
			if err := transcript.Close(); err != nil {
				log.Printf("Error closing transcript: %v", err)
			}
		}()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		rotateCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go rotateOnSignal(rotateCtx, transcript, hup)

		opts = append(opts, turtle.WithObserver(transcript))
		if verbose {
			log.Printf("transcript %s, run %s", transcript.GetFilePath(), transcript.RunID())
		}
	}

	emitter := turtle.New(w, opts...)
	registry := commands.NewCommandRegistry()
	commands.RegisterTurtleCommands(registry, emitter)

	res, err := script.NewRunner(registry, cfg.Mode, verbose).Run(ctx, steps)
	if err != nil {
		return res, err
	}
	if err := emitter.Err(); err != nil {
		return res, fmt.Errorf("failed to write output: %w", err)
	}
	return res, nil
}

type rotator interface {
	Rotate() error
}

// rotateOnSignal rotates the transcript each time a signal arrives on sigs,
// until ctx is done.
func rotateOnSignal(ctx context.Context, r rotator, sigs <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			if err := r.Rotate(); err != nil {
				log.Printf("Error rotating transcript: %v", err)
			}
		}
	}
}
