package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordexplorer/internal/app"
	"github.com/heartmarshall/wordexplorer/internal/config"
	"github.com/heartmarshall/wordexplorer/internal/etymology"
	"github.com/heartmarshall/wordexplorer/internal/service/wotd"
)

// errNotFound ends a command that found no etymology. The message has already
// been printed.
var errNotFound = errors.New("no etymology found")

const dateLayout = "2006-01-02"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "etymology",
		Short:         "Extract word origins from Wiktionary markup and dictionary data",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newExtractCmd(),
		newLookupCmd(&configPath),
		newWotdCmd(),
	)

	return root
}

func newExtractCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract the etymology from a wikitext file, or stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readMarkup(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			if !strict {
				fmt.Fprintln(cmd.OutOrStdout(), etymology.Extract(markup))
				return nil
			}

			text, ok := etymology.ExtractStrict(markup)
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "no English etymology section found")
				return errNotFound
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "only use the English etymology section, no fallback")

	return cmd
}

func newLookupCmd(configPath *string) *cobra.Command {
	var combinedOnly bool

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up against the live upstream sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(*configPath)
			if err != nil {
				return err
			}

			// Upstream degradation is logged at warn; keep it off stdout.
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			svc := app.NewLookupService(cfg.Providers, nil, nil, logger)

			out := cmd.OutOrStdout()

			if combinedOnly {
				text, ok := svc.GetCombinedEtymology(cmd.Context(), args[0])
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "no etymology found")
					return errNotFound
				}
				fmt.Fprintln(out, text)
				return nil
			}

			page, err := svc.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(out, page.Term+phonetic(page.Phonetic))
			for i, d := range page.Definitions {
				fmt.Fprintf(out, "%d. %s\n", i+1, definitionLine(d.PartOfSpeech, d.Definition))
			}
			fmt.Fprintf(out, "\nEtymology (%s): %s\n", page.EtymologyProvenance, page.Etymology)
			if page.Wikipedia != nil {
				fmt.Fprintf(out, "\n%s\n%s\n", page.Wikipedia.Extract, page.Wikipedia.URL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&combinedOnly, "combined", false, "print only the labeled multi-source etymology")

	return cmd
}

func newWotdCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "wotd",
		Short: "Print the word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
				}
				day = parsed
			}

			w := wotd.For(day)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", w.Word, w.Definition)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to pick the word for, YYYY-MM-DD (default: today)")

	return cmd
}

func readMarkup(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func phonetic(p string) string {
	if p == "" {
		return ""
	}
	return " " + p
}

func definitionLine(pos, def string) string {
	if pos == "" {
		return def
	}
	return "(" + strings.ToLower(pos) + ") " + def
}
