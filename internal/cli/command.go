package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukrphon/ipauk"
)

// Viper keys the flags are bound to. A config file or IPAUK_* environment
// variables can set the same keys.
const (
	keyCheckAccent = "transcribe.check_accent"
	keyWorkers     = "batch.workers"
	keyLogLevel    = "log.level"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ipauk [text...]",
		Short: "Ukrainian to IPA transcriber",
		Long: `ipauk transcribes Ukrainian Cyrillic text into the International
Phonetic Alphabet.

Mark the stressed vowel of every word with a combining acute accent
(U+0301), or a combining grave (U+0300) for secondary stress. Words with
a single vowel need no mark.

Examples:
  ipauk Сла́ва Украї́ні              # Transcribe a phrase
  ipauk --check-accent вода        # Fail on a missing stress mark
  ipauk --trace сме́рть             # Show every rewrite stage
  ipauk --batch words.txt          # Transcribe a word list, one per line`,
		Version:      ipauk.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, args, flags)
		},
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ipauk.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().BoolVar(&flags.CheckAccent, "check-accent", flags.CheckAccent, "Reject words of several syllables that carry no stress mark")
	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Transcribe lines from file (- for stdin)")
	cmd.Flags().BoolVarP(&flags.Trace, "trace", "t", false, "Print the buffer after every pipeline stage")
	cmd.Flags().BoolVar(&flags.Examples, "examples", false, "Transcribe the built-in example words")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Concurrent batch workers (0 = number of CPUs)")

	bindFlagsToViper(cmd)
}

// wordSepNormalizeFunc accepts underscores in flag names, so that
// --check_accent matches the config key spelling.
func wordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(keyCheckAccent, cmd.Flags().Lookup("check-accent"))
	viper.BindPFlag(keyWorkers, cmd.Flags().Lookup("workers"))
	viper.BindPFlag(keyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".ipauk" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ipauk")
	}

	// IPAUK_TRANSCRIBE_CHECK_ACCENT, IPAUK_BATCH_WORKERS, IPAUK_LOG_LEVEL
	viper.SetEnvPrefix("IPAUK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
