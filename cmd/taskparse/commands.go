package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/taskparse"
)

func parseCmd() *cobra.Command {
	var (
		anchor   string
		timezone string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Split text into tasks and resolve their dates and times",
		Long: `Split text into tasks and resolve their dates and times.

Examples:
  taskparse parse "Zed concert at 4pm tomorrow and buy milk on Friday"
  taskparse parse "submit report by Monday morning #work" --anchor 2025-01-15 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := anchorDate(anchor, timezone, time.Now())
			if err != nil {
				return err
			}

			tasks, err := taskparse.Extract(strings.Join(args, " "), day)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), tasks)
			}
			renderTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&anchor, "anchor", "a", "", "anchor date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&timezone, "tz", "", "IANA timezone for today, defaults to US Pacific")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func categorizeCmd() *cobra.Command {
	var (
		categories  []string
		lexiconPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "categorize [text]",
		Short: "Suggest one of the given categories for text",
		Long: `Suggest one of the given categories for text.

Examples:
  taskparse categorize "book a dentist appointment" -c work,health,shopping
  taskparse categorize "quarterly report" -c work,personal --lexicon lexicon.yaml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lexicon categorize.Lexicon
			if lexiconPath != "" {
				loaded, err := categorize.LoadLexicon(lexiconPath)
				if err != nil {
					return err
				}
				lexicon = loaded
			}

			result, err := categorize.NewClassifier(lexicon).Classify(strings.Join(args, " "), categories)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			renderCategory(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "candidate categories (repeatable or comma separated)")
	cmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML keyword lexicon")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// anchorDate returns the explicit anchor, or today in the given zone.
func anchorDate(anchor, timezone string, now time.Time) (time.Time, error) {
	if anchor != "" {
		day, err := time.Parse(datemath.DateFormat, anchor)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid anchor date %q, want YYYY-MM-DD", anchor)
		}
		return day, nil
	}
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return parser.Today(now), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
