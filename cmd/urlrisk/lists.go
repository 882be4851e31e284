package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haukened/urlrisk/internal/urlrisk/repos/reflists"
)

// NewListsCmd creates the lists command.
func NewListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists [keywords|tlds|domains]",
		Short: "Print the effective reference lists",
		Long: `Lists prints the reference lists the evaluator uses after applying any
list directory overrides. The output is in list file format, so a single
list can be redirected into a file and edited:

  urlrisk lists tlds > /etc/urlrisk/tlds.txt`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"keywords", "tlds", "domains"},
		RunE:      runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, args []string) error {
	app, err := loadApplication(cmd)
	if err != nil {
		return err
	}

	sections := []struct {
		name, file string
		entries    []string
	}{
		{"keywords", reflists.KeywordsFile, app.lists.PhishingKeywords()},
		{"tlds", reflists.TLDsFile, app.lists.SuspiciousTLDs()},
		{"domains", reflists.DomainsFile, app.lists.PopularDomains()},
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	first := true
	for _, s := range sections {
		if len(args) == 1 && args[0] != s.name {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "# %s (%d entries)\n", s.file, len(s.entries))
		for _, e := range s.entries {
			fmt.Fprintln(w, e)
		}
	}
	return w.Flush()
}
