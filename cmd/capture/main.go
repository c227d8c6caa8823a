// Command capture parses a single spoken phrase from the command line and
// prints the structured result as JSON. Exit status 1 means the phrase was
// not recognized.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contaclara/quickcapture/internal/domain/capture"
	"github.com/contaclara/quickcapture/internal/domain/capture/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "capture",
		Short:         "Parse spoken Brazilian-Portuguese transaction phrases",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDateCmd(), newAmountCmd(), newDraftCmd())
	return root
}

func newDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <phrase>",
		Short: "Resolve a spoken date and time, e.g. \"ontem às 14h30\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := capture.ParseSpokenDate(strings.Join(args, " "))
			if !result.OK() {
				return fmt.Errorf("%s", result.Failure)
			}
			return printJSON(cmd, map[string]string{
				"date": result.Date.Format("2006-01-02"),
				"time": result.Time,
			})
		},
	}
}

func newAmountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amount <phrase>",
		Short: "Resolve a spoken amount, e.g. \"trinta e cinco reais\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := capture.ParseSpokenAmount(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("invalid amount")
			}
			return printJSON(cmd, map[string]string{"amount": amount.StringFixed(2)})
		},
	}
}

func newDraftCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "draft <phrase>",
		Short: "Build a full transaction draft from a transcript",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewService(nil)
			draft, err := svc.BuildDraft(context.Background(), service.DraftInput{
				Transcript: strings.Join(args, " "),
				Title:      title,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, draft)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "transaction title (defaults to the transcript)")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
