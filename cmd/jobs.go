package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/gurukul/internal/store"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect video render jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent render jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		jobs, err := s.RenderJobRepo().List(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No render jobs found.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-19s  %-9s  %-7s  %s\n",
			"Job ID", "Created", "Status", "Quality", "Prompt")
		fmt.Println(strings.Repeat("─", 110))

		for _, j := range jobs {
			if status != "" && j.Status != status {
				continue
			}
			fmt.Printf("%-36s  %-19s  %-9s  %-7s  %s\n",
				j.JobID,
				j.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				j.Status,
				j.Quality,
				truncate(j.Prompt, 40),
			)
		}
		return nil
	},
}

var jobsViewCmd = &cobra.Command{
	Use:   "view <job-id>",
	Short: "View full details of a render job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		j, err := s.RenderJobRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get job: %w", err)
		}
		if j == nil {
			return fmt.Errorf("job %q not found", args[0])
		}

		fmt.Printf("Job ID:    %s\n", j.JobID)
		fmt.Printf("Created:   %s\n", j.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:   %s\n", j.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Status:    %s\n", j.Status)
		fmt.Printf("Quality:   %s\n", j.Quality)
		fmt.Printf("Prompt:    %s\n", j.Prompt)
		if j.ResultURL != "" {
			fmt.Printf("Result:    %s\n", j.ResultURL)
		}
		if j.ErrorDetail != "" {
			fmt.Printf("Error:     %s\n", j.ErrorDetail)
		}

		if len(j.SceneParams) > 0 {
			sep := strings.Repeat("─", 60)
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("SCENE SPEC")
			fmt.Println(sep)
			pretty, err := json.MarshalIndent(j.SceneParams, "", "  ")
			if err != nil {
				return fmt.Errorf("encode scene params: %w", err)
			}
			fmt.Println(string(pretty))
		}

		return nil
	},
}

func init() {
	jobsListCmd.Flags().IntP("limit", "n", 20, "Number of jobs to show")
	jobsListCmd.Flags().StringP("status", "s", "", "Filter by status (queued, rendering, completed, failed)")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsViewCmd)
}
