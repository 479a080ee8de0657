package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lint381/internal/lint"
)

type ruleJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Languages string `json:"languages"`
	Summary   string `json:"summary"`
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			lang, err := cmd.Flags().GetString("lang")
			if err != nil {
				return fmt.Errorf("failed to get lang flag: %w", err)
			}
			metas, err := listedRules(lang)
			if err != nil {
				return err
			}
			switch format {
			case "pretty":
				return renderRulesTable(cmd.OutOrStdout(), metas)
			case "json":
				return renderRulesJSON(cmd.OutOrStdout(), metas)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().String("lang", "all", "only rules for this language (all|c|cpp)")
	return cmd
}

func listedRules(lang string) ([]lint.Meta, error) {
	metas := ruleMetas()
	if lang == "all" {
		return metas, nil
	}
	want, err := lint.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	out := metas[:0:0]
	for _, m := range metas {
		if m.Languages.Has(want) {
			out = append(out, m)
		}
	}
	return out, nil
}

func renderRulesTable(out io.Writer, metas []lint.Meta) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLANGUAGES\tSUMMARY")
	for _, m := range metas {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Languages, m.Summary)
	}
	return tw.Flush()
}

func renderRulesJSON(out io.Writer, metas []lint.Meta) error {
	payload := make([]ruleJSON, len(metas))
	for i, m := range metas {
		payload[i] = ruleJSON{ID: m.ID, Name: m.Name, Languages: m.Languages.String(), Summary: m.Summary}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
