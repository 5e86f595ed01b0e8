package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/rng/xlcg"
	"golang.org/x/term"
)

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Draw numbers",
	Long: `Draw numbers in [min, max) and print them. For example:
  trand next --seed=12345 --count=5
  trand next --min=-10 --max=10`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("count")
		if count < 0 {
			return fmt.Errorf("count must not be negative: %d", count)
		}

		seed, fromClock := seedFromConfig()
		if fromClock {
			log.Printf("[INFO] seed from clock: %d", seed)
		}

		g := xlcg.NewWithSeed(seed)
		values := make([]int64, count)
		for i := range values {
			values[i] = g.Next(viper.GetInt64("min"), viper.GetInt64("max"))
		}

		out := cmd.OutOrStdout()
		return printValues(out, values, isTerminal(out))
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)

	addDrawFlags(nextCmd, 10)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printValues writes a numbered listing for people, one bare value per line otherwise
func printValues(w io.Writer, values []int64, pretty bool) error {
	if !pretty {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}

	rule := strings.Repeat("-", 40)
	strs := make([]string, len(values))
	fmt.Fprintln(w, rule)
	for i, v := range values {
		fmt.Fprintf(w, "%d. %d\n", i+1, v)
		strs[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(w, rule)
	_, err := fmt.Fprintf(w, "List: [%s]\n", strings.Join(strs, ", "))
	return err
}
