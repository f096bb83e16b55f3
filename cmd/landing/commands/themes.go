package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hypnosis-landing/internal/theme"
)

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the page themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLABEL\tHERO\tSECTIONS")
			for _, th := range theme.All() {
				name := th.Name
				if name == cfg.Theme {
					name += " *"
				}
				sections := make([]string, len(th.Sections))
				for i, s := range th.Sections {
					sections[i] = string(s)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, th.Label, th.HeroLayout, strings.Join(sections, ","))
			}
			return w.Flush()
		},
	}
}
