package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriforge/internal/model"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete curricula by id",
	Long: `Delete removes each listed curriculum. Ids that do not exist are
ignored, so deleting twice is safe.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if err := curriculumService.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete curriculum %d: %w", id, err)
		}
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(model.DeleteCurriculumResponse{Success: true})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d curricula\n", len(ids))
	return nil
}
