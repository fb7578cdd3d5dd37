package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramdanilegend/calendar-ms/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calendar-ms",
		Short: "Calendar conversion service",
		Long:  `Calendar conversion and regional mapping service translating dates between the Gregorian and Hijri calendars with region-specific sighting adjustments.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewRegionsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
