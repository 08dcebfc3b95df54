package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/highlighter/internal/app"
	"github.com/zjrosen/highlighter/internal/log"
	"github.com/zjrosen/highlighter/internal/watcher"
	"github.com/zjrosen/highlighter/languages"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-render a file every time it changes",
	Long: `Render FILE once, then again after every save until interrupted.

Rapid successive writes are coalesced using watch.debounce from the config.
Rendering errors are reported and watching continues.

Examples:
  highlighter watch main.go --output main.html
  highlighter watch query.bql --target ansi`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "language name or alias")
	watchCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "output format: html, ansi, or json (overrides config)")
	watchCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write output to a file instead of stdout")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts := cfg
	if targetFlag != "" {
		opts.Target = targetFlag
	}
	svc, err := app.New(opts, languages.Default())
	if err != nil {
		return err
	}
	// Fail fast on a bad --lang before watching
	if _, err := svc.ResolveLanguage(langFlag, path); err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{Path: path, DebounceDur: opts.Watch.Debounce})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, svc, path, onChange, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// watchLoop renders path once and again on every signal from onChange until
// ctx is done.
func watchLoop(ctx context.Context, svc *app.Service, path string, onChange <-chan struct{}, stdout, stderr io.Writer) error {
	renderOnce := func() {
		src, err := readSource(nil, path)
		if err == nil {
			var out string
			if out, err = render(ctx, svc, langFlag, path, src); err == nil {
				err = writeOutput(stdout, outputFlag, out)
			}
		}
		if err != nil {
			log.ErrorErr(log.CatWatcher, "re-render failed", err, "path", path)
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return
		}
		log.Debug(log.CatWatcher, "rendered", "path", path)
	}

	renderOnce()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-onChange:
			renderOnce()
		}
	}
}
