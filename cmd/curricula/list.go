package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved curricula, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	curricula, err := curriculumService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list curricula: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(curricula)
	}

	if len(curricula) == 0 {
		fmt.Fprintln(out, "No curricula saved.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUDIENCE\tDURATION\tCREATED")
	for _, c := range curricula {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Audience, c.Duration, c.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}
