// portfolioctl is a small admin CLI for the portfolio server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lionetto/portfolio-server/client"
)

var (
	apiFlag      string
	passwordFlag string
)

var rootCmd = &cobra.Command{
	Use:          "portfolioctl",
	Short:        "Administer a portfolio server from the command line",
	SilenceUsage: true,
}

// newClient builds the SDK client from the global flags. The password falls
// back to PORTFOLIO_ADMIN_PASSWORD so scripts never put it on the command
// line.
func newClient() *client.Client {
	password := passwordFlag
	if password == "" {
		password = os.Getenv("PORTFOLIO_ADMIN_PASSWORD")
	}
	return client.New(apiFlag, client.WithPassword(password))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:3000", "Base URL of the portfolio server")
	rootCmd.PersistentFlags().StringVarP(&passwordFlag, "password", "p", "", "Admin password (defaults to PORTFOLIO_ADMIN_PASSWORD)")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify the admin password against the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Login(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the server health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("UP")
			return nil
		},
	}

	rootCmd.AddCommand(loginCmd, healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
