package cmd

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "ziplong",
		Short:         "Inspect and build 4-byte little-endian ZIP header fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.init(c)
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.ziplong.yaml)")
	f.String("format", defaultFormat, "value format: hex, dec or both")
	f.String("log-level", defaultLogLevel, "log level")
	_ = a.v.BindPFlag("format", f.Lookup("format"))
	_ = a.v.BindPFlag("log-level", f.Lookup("log-level"))

	root.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newScanCmd(a),
		newSignaturesCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func (a *app) init(c *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "find home directory")
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".ziplong")
	}
	a.v.SetEnvPrefix("ziplong")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "read config")
		}
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log, err = newLogger(c.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}
