package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the site assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			sess, err := c.StartChat(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(sess.Greeting)

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				msg := strings.TrimSpace(scanner.Text())
				if msg == "" {
					continue
				}
				if msg == "/quit" {
					return nil
				}
				reply, err := c.SendChat(cmd.Context(), sess.ID, msg)
				if err != nil {
					return err
				}
				fmt.Println(reply)
			}
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print refresh signals as the server broadcasts them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := newClient().Subscribe(cmd.Context())
			if err != nil {
				return err
			}
			for sig := range ch {
				fmt.Println(sig.Kind)
			}
			return nil
		},
	}

	rootCmd.AddCommand(chatCmd, watchCmd)
}
