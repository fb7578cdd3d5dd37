package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramdanilegend/calendar-ms/internal/adapters/hijricalc"
	"github.com/ramdanilegend/calendar-ms/internal/application/services"
	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/config"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/logger"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/server"
	"github.com/ramdanilegend/calendar-ms/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calendar conversion API server",
		Long:  "Start the calendar conversion API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewConvertCommand creates the one-shot conversion command
func NewConvertCommand() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single date between calendars",
		Long:  "Convert a single date between the Gregorian and Hijri calendars and print the result as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			from, _ := cmd.Flags().GetString("from")
			date, _ := cmd.Flags().GetString("date")
			region, _ := cmd.Flags().GetString("region")
			monthNames, _ := cmd.Flags().GetBool("month-names")
			strict, _ := cmd.Flags().GetBool("strict")
			noFallback, _ := cmd.Flags().GetBool("no-fallback")

			if date == "" {
				log.Fatal("A date is required (--date YYYY-MM-DD)")
			}

			runConvert(from, date, region, monthNames, strict, noFallback)
		},
	}

	convertCmd.Flags().String("from", "gregorian", "Source calendar (gregorian, hijri)")
	convertCmd.Flags().String("date", "", "Date to convert as YYYY-MM-DD (required)")
	convertCmd.Flags().String("region", "global", "Region for sighting-based adjustment")
	convertCmd.Flags().Bool("month-names", false, "Include Hijri month names in the result")
	convertCmd.Flags().Bool("strict", false, "Fail on invalid dates instead of converting best-effort")
	convertCmd.Flags().Bool("no-fallback", false, "Fail on unknown regions instead of falling back to global")

	return convertCmd
}

// NewRegionsCommand creates the regions listing command
func NewRegionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List available regions and their adjustment policies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, mapping := range entities.Mappings() {
				fmt.Printf("%-14s adjustment=%+d rukyat=%-5t %s\n",
					mapping.Region, mapping.AdjustmentDays, mapping.RukyatBased, mapping.Description)
			}
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print calendar-ms version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("calendar-ms v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting calendar-ms API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func runConvert(from, date, region string, monthNames, strict, noFallback bool) {
	year, month, day, err := parseDate(date)
	if err != nil {
		log.Fatalf("Invalid date: %v", err)
	}

	// The CLI prints the result only; conversion logs stay out of stdout
	service := services.NewConversionService(hijricalc.NewTabularBridge(), logger.NewNop())

	allowFallback := !noFallback
	req := ports.ConvertRequest{
		Calendar:          entities.Calendar(from),
		Year:              year,
		Month:             month,
		Day:               day,
		Region:            entities.Region(region),
		AllowFallback:     &allowFallback,
		IncludeMonthNames: monthNames,
		Strict:            strict,
	}

	result, err := service.Convert(context.Background(), req)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}

	fmt.Println(string(output))
}

// parseDate splits a YYYY-MM-DD string into its components without
// rejecting structurally invalid dates; that is the engine's job.
func parseDate(date string) (year, month, day int, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD, got %q", date)
	}

	if _, err := fmt.Sscanf(date, "%d-%d-%d", &year, &month, &day); err != nil {
		return 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD, got %q", date)
	}

	return year, month, day, nil
}
