package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Read and edit the site-content document",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the site-content document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := newClient().SiteContent(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Set one text field and save, e.g. set hero.quote \"Nuova citazione\"",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			doc, err := c.SiteContent(cmd.Context())
			if err != nil {
				return err
			}
			if err := doc.SetField(args[0], args[1]); err != nil {
				return err
			}
			if err := c.SaveSiteContent(cmd.Context(), doc); err != nil {
				return err
			}
			fmt.Println("saved")
			return nil
		},
	}

	profileImageCmd := &cobra.Command{
		Use:   "profile-image <file>",
		Short: "Upload a profile image and write its URL into the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			c := newClient()
			url, err := c.UploadProfileImage(cmd.Context(), f, filepath.Base(args[0]))
			if err != nil {
				return err
			}

			doc, err := c.SiteContent(cmd.Context())
			if err != nil {
				return err
			}
			doc.Theme.ProfileImage = url
			if err := c.SaveSiteContent(cmd.Context(), doc); err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}

	contentCmd.AddCommand(getCmd, setCmd, profileImageCmd)
	rootCmd.AddCommand(contentCmd)
}
