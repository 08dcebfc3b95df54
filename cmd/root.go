package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/highlighter/internal/app"
	"github.com/zjrosen/highlighter/internal/config"
	"github.com/zjrosen/highlighter/internal/log"
	"github.com/zjrosen/highlighter/languages"
)

// localConfigPath is checked before the user config and is where
// 'config init' and 'config set-color' write when no file is in use.
const localConfigPath = ".highlighter/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	cfgErr     error
	debugFlag  bool
	logCleanup func()

	langFlag        string
	targetFlag      string
	classPrefixFlag string
	outputFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "highlighter [file]",
	Short: "Tokenize source text and render it highlighted",
	Long: `Scan source text with a regex-driven lexer and render the tokens as HTML,
ANSI-colored terminal output, or JSON.

The language is taken from --lang, then from the file extension, then from
the language key in the config. Input is read from stdin when no file is given.

Examples:
  highlighter main.go
  highlighter --lang bql --target ansi < query.bql
  highlighter main.go --output main.html --class-prefix hl-
  echo '+[->+<]' | highlighter --lang bf --target json`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runHighlight,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .highlighter/config.yaml, then ~/.config/highlighter/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs (also HIGHLIGHTER_DEBUG; path from HIGHLIGHTER_LOG, default debug.log)")

	rootCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "language name or alias (see 'highlighter languages')")
	rootCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "output format: html, ansi, or json (overrides config)")
	rootCmd.Flags().StringVar(&classPrefixFlag, "class-prefix", "", "class prefix for html spans (overrides config)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write output to a file instead of stdout")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .highlighter/config.yaml (current directory)
		// 2. ~/.config/highlighter/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "highlighter"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file anywhere - run with defaults
	}

	cfg, cfgErr = config.Decode(viper.GetViper())
}

func setup(cmd *cobra.Command, _ []string) error {
	if debugFlag || os.Getenv("HIGHLIGHTER_DEBUG") != "" {
		logPath := os.Getenv("HIGHLIGHTER_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatCLI, "command started", "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())
	}
	return cfgErr
}

func teardown(_ *cobra.Command, _ []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

func runHighlight(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	opts := cfg
	if targetFlag != "" {
		opts.Target = targetFlag
	}
	if cmd.Flags().Changed("class-prefix") {
		opts.HTML.ClassPrefix = classPrefixFlag
	}

	svc, err := app.New(opts, languages.Default())
	if err != nil {
		return err
	}

	src, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	out, err := render(cmd.Context(), svc, langFlag, path, src)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFlag, out)
}

// render resolves the language for path and renders src with svc.
func render(ctx context.Context, svc *app.Service, lang, path, src string) (string, error) {
	name, err := svc.ResolveLanguage(lang, path)
	if err != nil {
		return "", err
	}
	out, err := svc.Render(ctx, name, src)
	if err != nil {
		return "", fmt.Errorf("highlighting %s: %w", name, err)
	}
	return out, nil
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's input file
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil { //nolint:gosec // G306: rendered output is meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
