package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	logLevel = logLevelFlag{level: logrus.InfoLevel}
	log      = logrus.New()
)

// logLevelFlag adapts a logrus.Level to pflag.Value so --log-level
// accepts level names directly instead of an integer.
type logLevelFlag struct {
	level logrus.Level
}

func (f *logLevelFlag) String() string { return f.level.String() }
func (f *logLevelFlag) Type() string   { return "level" }
func (f *logLevelFlag) Set(s string) error {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return err
	}
	f.level = lvl
	return nil
}

var _ pflag.Value = (*logLevelFlag)(nil)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sexpfmt",
		Short: "Format, watch, diff, and inspect S-expression files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.sexpfmt.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Var(&logLevel, "log-level", "log level: debug, info, warn, error")

	root.AddCommand(
		newFmtCmd(),
		newWatchCmd(),
		newDiffCmd(),
		newStatsCmd(),
		newFindCmd(),
		newReplCmd(),
	)
	return root
}

// initConfig sets the log level from --log-level and --verbose, then
// loads sexpfmt's optional config file via viper with SEXPFMT_-prefixed
// environment overrides. No flag is bound to viper and no command reads
// a setting from it.
func initConfig() error {
	log.SetLevel(logLevel.level)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".sexpfmt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SEXPFMT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		log.WithError(err).Debug("no config file loaded")
	}
	return nil
}

// relativeLabel renders a short, colorless label for a file path
// relative to the current working directory, falling back to path as
// given if it can't be made relative.
func relativeLabel(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
