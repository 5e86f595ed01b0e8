package cmd

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/rng"
)

var (
	cfgFile string

	// clock seeds generators when no seed is configured
	clock = rng.SystemClock
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trand",
	Short: "Reproducible random numbers.",
	Long: `Reproducible random numbers.
Repo: https://github.com/tutils/trand
Draw numbers from an xorshift/Lehmer generator, For example:
  trand next --seed=12345 --min=0 --max=100 --count=10
  trand stats --min=1 --max=7 --count=100000
  trand serve --listen=0.0.0.0:8080`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trand.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".trand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".trand")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("trand")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("[INFO] Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags lets flags of cmd override config and env values
func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// seedFromConfig returns the configured seed, falling back to the clock
func seedFromConfig() (seed int64, fromClock bool) {
	if viper.IsSet("seed") {
		return viper.GetInt64("seed"), false
	}
	return rng.SeedFromClock(clock), true
}

// addDrawFlags defines the flags shared by commands that draw numbers
func addDrawFlags(cmd *cobra.Command, defaultCount int) {
	flags := cmd.Flags()
	flags.Int64P("seed", "s", 0, "initial seed (default is the current time in milliseconds)")
	flags.Int64("min", 0, "lower bound of the range")
	flags.Int64("max", 100, "upper bound of the range (exclusive)")
	flags.IntP("count", "n", defaultCount, "how many numbers to draw")
}
