// Command gkverb conjugates classical Greek verbs.
//
// Conjugate one tense, voice and mood of a verb and print it:
//
//	gkverb conjugate --stem pres:παυ --tvm pai
//
// Conjugate a tense family's default parts and write them to csv:
//
//	gkverb conjugate --stem aor:παυσ --all --outfile forms.csv
//
// Conjugate every verb in a csv file:
//
//	gkverb batch --infile stems.csv --outfile forms.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jsMRSoL/greek-verb-writer/logger"
)

var rootCmd = &cobra.Command{
	Use:   "gkverb",
	Short: "Conjugate classical Greek verbs from tagged stems",
	Long: `gkverb builds the indicative forms of a classical Greek verb from a
tense-tagged stem such as "pres:παυ".

Supported tense-voice-mood codes:
  pai ppi iai ipi   present and imperfect
  fai fmi fpi       future
  aai ami api       aorist`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(viper.GetBool("json-logs"), viper.GetString("log-level")); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "emit logs as JSON")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("json-logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(serveCmd)
}

// initConfig reads $HOME/.gkverb.yaml (or ./.gkverb.yaml) and GKVERB_*
// environment variables. Missing config is fine.
func initConfig() {
	viper.SetConfigName(".gkverb")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("GKVERB")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
