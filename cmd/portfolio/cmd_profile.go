package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read or replace the portfolio owner's profile",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Fetch the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := c.container.Profiles.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), profile)
		},
	}

	var (
		file  string
		token string
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Replace the profile with the contents of a JSON file",
		Long: `Replace the profile with the contents of a JSON file.

The admin token is taken from --token, then PORTFOLIO_ADMIN_TOKEN.
The backend response is printed exactly as received.`,
		Example: `  portfolio profile update --file profile.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile domain.Profile
			if err := readJSONFile(file, &profile); err != nil {
				return err
			}
			opts := c.container.WithToken(token, nil)
			body, err := c.container.Profiles.Update(cmd.Context(), &profile, opts.Credentials)
			if err != nil {
				return err
			}
			return printRaw(cmd.OutOrStdout(), body)
		},
	}
	update.Flags().StringVarP(&file, "file", "f", "", "profile JSON file")
	update.Flags().StringVar(&token, "token", "", "admin token (defaults to PORTFOLIO_ADMIN_TOKEN)")
	_ = update.MarkFlagRequired("file")

	cmd.AddCommand(get, update)
	return cmd
}

func readJSONFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
