package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/byteservice/internal/adapters/log"
	"github.com/bft-labs/byteservice/internal/adapters/provider"
	"github.com/bft-labs/byteservice/internal/app"
	"github.com/bft-labs/byteservice/internal/cliconfig"
	"github.com/bft-labs/byteservice/internal/domain"
)

const (
	successMessage = "All good."
	failureMessage = "Whoops."
)

var longHelp = strings.TrimSpace(`
Check whether a byte is zero through the provider library.

With no flags, no config file and no BYTESERVICE_* variables the command
checks byte 0, prints "All good." and exits 0. If the check comes back
false the command aborts.
`)

var exampleUsage = strings.TrimSpace(`
  byteservice
  byteservice --byte 1 --log-level debug
  byteservice --config $HOME/.byteservice/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(out io.Writer, log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "byteservice",
		Short:         "Check whether a byte is zero",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides the file; flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log = log.Level(cfg.Level())
			log.Debug().Interface("config", cfg).Msg("configuration")

			a := app.New(provider.NewAdapter(),
				app.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
			)
			report(a.Run(domain.NewByte(cfg.Byte)), out, log)
			return nil
		},
	}
	root.SetOut(out)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.byteservice/config.toml)")
	root.Flags().Uint8Var(&cfg.Byte, "byte", cfg.Byte, "byte to check")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	return root
}

// report prints the success message, or aborts the process when ok is false.
// The panic value is failureMessage whatever the log level.
func report(ok bool, out io.Writer, log zerolog.Logger) {
	if !ok {
		log.Error().Msg(failureMessage)
		panic(failureMessage)
	}
	fmt.Fprintln(out, successMessage)
}

func main() {
	log := cliconfig.Logger()

	if err := newRootCmd(os.Stdout, log).Execute(); err != nil {
		log.Error().Err(err).Msg("byteservice")
		os.Exit(1)
	}
}
