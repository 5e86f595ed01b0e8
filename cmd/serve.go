package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/httpsrv"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP number server",
	Long: `Start an HTTP server handing out seeded generator sessions, with a websocket stream per session. For example:
  trand serve --listen 0.0.0.0:8080`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := httpsrv.NewServer(
			httpsrv.WithListenAddress(viper.GetString("listen")),
			httpsrv.WithMaxConns(viper.GetInt("max-conns")),
			httpsrv.WithClock(clock),
		)
		return s.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", httpsrv.DefaultListenAddress, "http server listen address")
	flags.Int("max-conns", 0, "maximum simultaneous connections (0 is unlimited)")
}
