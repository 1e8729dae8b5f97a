package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-manager/pkg/gcalendar"
)

func gcalAuthCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth [credentials.json]",
		Short: "Authorize Google Calendar access and write a token file",
		Long: `Authorize Google Calendar access for OAuth Desktop App credentials.

Open the printed URL, sign in, then paste the authorization code back here.
The API server picks up the token on its next start.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			cfg, err := gcalendar.OAuthConfigFromJSON(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, whenStyle.Render(gcalendar.AuthCodeURL(cfg)))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := cfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenPath, "where to write the token")

	return cmd
}
