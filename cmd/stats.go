package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/rng/xlcg"
	"github.com/tutils/trand/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a sample",
	Long: `Draw a sample and report its spread and a chi-square uniformity test. For example:
  trand stats --min=1 --max=7 --count=100000`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := seedFromConfig()
		r, err := stats.Sample(xlcg.NewWithSeed(seed), viper.GetInt64("min"), viper.GetInt64("max"), viper.GetInt("count"))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Seed int64 `json:"seed"`
			*stats.Report
		}{seed, r})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	addDrawFlags(statsCmd, 10000)
}
