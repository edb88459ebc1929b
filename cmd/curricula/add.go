package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriforge/internal/model"
)

var (
	addTitle       string
	addSubject     string
	addAudience    string
	addDuration    string
	addContentFile string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a curriculum",
	Long: `Add saves a curriculum whose markdown body is read from --content-file.

Example:
  curricula add --subject Rust --audience "Backend developers" --duration "4 weeks" --content-file plan.md
  generate-plan | curricula add --subject Rust --audience Devs --duration "4 weeks" --content-file -`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "title (default: \"<subject> for <audience>\")")
	addCmd.Flags().StringVar(&addSubject, "subject", "", "course subject")
	addCmd.Flags().StringVar(&addAudience, "audience", "", "target audience")
	addCmd.Flags().StringVar(&addDuration, "duration", "", "course duration, free form")
	addCmd.Flags().StringVar(&addContentFile, "content-file", "", "markdown file with the curriculum body, - for stdin")

	for _, name := range []string{"subject", "audience", "duration", "content-file"} {
		_ = addCmd.MarkFlagRequired(name)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd.InOrStdin(), addContentFile)
	if err != nil {
		return err
	}

	title := addTitle
	if title == "" {
		title = fmt.Sprintf("%s for %s", addSubject, addAudience)
	}

	c, err := curriculumService.Create(cmd.Context(), &model.CreateCurriculumRequest{
		Title:    &title,
		Subject:  &addSubject,
		Audience: &addAudience,
		Duration: &addDuration,
		Content:  &content,
	})
	if err != nil {
		return fmt.Errorf("save curriculum: %w", err)
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(model.CreateCurriculumResponse{ID: c.ID})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved curriculum %d\n", c.ID)
	return nil
}

func readContent(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(b), nil
}
