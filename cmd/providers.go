package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/gurukul/internal/provider"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Show configured AI providers and their availability",
	Run: func(cmd *cobra.Command, args []string) {
		registry := provider.NewRegistry(provider.ConfigFromEnv())

		fmt.Printf("%-10s  %-12s  %-9s  %s\n", "Capability", "Provider", "Priority", "Available")
		fmt.Println(strings.Repeat("─", 48))

		for _, cap := range provider.Capabilities() {
			for _, d := range registry.All(cap) {
				avail := "✗"
				if d.Available {
					avail = "✓"
				}
				fmt.Printf("%-10s  %-12s  %-9d  %s\n", d.Capability, d.ID, d.Priority, avail)
			}
		}
	},
}
