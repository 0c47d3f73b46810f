package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage the portfolio gallery",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List gallery items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := newClient().Portfolio(cmd.Context())
			if err != nil {
				return err
			}
			for _, it := range items {
				fmt.Printf("%s\t%s\t%s\t%s\n", it.ID, it.Title, it.Image, it.Link)
			}
			return nil
		},
	}

	var titleFlag, linkFlag string
	addCmd := &cobra.Command{
		Use:   "add <image-file>",
		Short: "Upload an image and append a gallery item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			item, err := newClient().CreatePortfolioItem(cmd.Context(), f, filepath.Base(args[0]), titleFlag, linkFlag)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", item.ID, item.Image)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Item title")
	addCmd.Flags().StringVarP(&linkFlag, "link", "l", "", "Item link")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a gallery item and its stored image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeletePortfolioItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	galleryCmd.AddCommand(listCmd, addCmd, rmCmd)
	rootCmd.AddCommand(galleryCmd)
}
