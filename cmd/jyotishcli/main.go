// Command jyotishcli is a comprehensive CLI for Vedic astronomical
// calculations, grounded on cmd/panchangam-cli's cobra command structure
// and location presets, re-targeted to call the in-process result-access
// API directly instead of a gRPC client (this repository carries no
// gRPC service; see DESIGN.md).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vedastra/jyotisha/api"
	"github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/observability"
)

var (
	outputFormat string
	latitude     float64
	longitude    float64
	timezone     string
	locationName string
	datetimeStr  string
	locationPreset string
)

// locationPresets mirrors cmd/panchangam-cli's preset table.
var locationPresets = map[string]struct {
	Lat  float64
	Lon  float64
	TZ   string
	Name string
}{
	"nyc":      {40.7128, -74.0060, "America/New_York", "New York, USA"},
	"london":   {51.5074, -0.1278, "Europe/London", "London, UK"},
	"tokyo":    {35.6762, 139.6503, "Asia/Tokyo", "Tokyo, Japan"},
	"mumbai":   {19.0760, 72.8777, "Asia/Kolkata", "Mumbai, India"},
	"chennai":  {13.0827, 80.2707, "Asia/Kolkata", "Chennai, India"},
	"paris":    {48.8566, 2.3522, "Europe/Paris", "Paris, France"},
	"sydney":   {-33.8688, 151.2093, "Australia/Sydney", "Sydney, Australia"},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jyotishcli",
		Short: "Vedic (Jyotiṣa) astronomical calculation CLI",
		Long: `jyotishcli computes a full panchāṅga (tithi, nakṣatra, yoga, karaṇa,
vāra), sun/moon times, and auspicious/inauspicious periods for a given
civil date-time and geographic position.`,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: json, yaml, text")
	rootCmd.PersistentFlags().Float64Var(&latitude, "lat", 0, "latitude in decimal degrees")
	rootCmd.PersistentFlags().Float64Var(&longitude, "lon", 0, "longitude in decimal degrees")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "UTC", "IANA timezone name")
	rootCmd.PersistentFlags().StringVar(&locationName, "location-name", "", "display name for the location")
	rootCmd.PersistentFlags().StringVar(&locationPreset, "location", "", "named location preset (nyc, london, tokyo, mumbai, chennai, paris, sydney)")
	rootCmd.PersistentFlags().StringVar(&datetimeStr, "date", "", "civil date-time, RFC3339 (defaults to now)")

	rootCmd.AddCommand(newPanchangamCmd())
	rootCmd.AddCommand(newTransitsCmd())
	rootCmd.AddCommand(newLocationsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func resolveLocation() (api.Location, error) {
	if locationPreset != "" {
		preset, ok := locationPresets[locationPreset]
		if !ok {
			return api.Location{}, fmt.Errorf("unknown location preset %q", locationPreset)
		}
		return api.Location{Latitude: preset.Lat, Longitude: preset.Lon, Timezone: preset.TZ, Name: preset.Name}, nil
	}
	return api.Location{Latitude: latitude, Longitude: longitude, Timezone: timezone, Name: locationName}, nil
}

func resolveDate() (time.Time, error) {
	if datetimeStr == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, datetimeStr)
}

func newPanchangamCmd() *cobra.Command {
	var houseSystem, ayanamsa string

	cmd := &cobra.Command{
		Use:   "panchangam",
		Short: "Compute the full sidereal chart and panchāṅga for a date and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := resolveLocation()
			if err != nil {
				return err
			}
			date, err := resolveDate()
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			observer := observability.NewLocalObserver()
			chartService := api.NewService(ephemeris.NewSimplifiedAdapter(), observer)

			_, offsetSeconds := date.Zone()

			req := api.ChartRequest{
				Date:           date,
				Location:       location,
				UTCOffsetHours: float64(offsetSeconds) / 3600.0,
				HouseSystem:    houseSystem,
				Ayanamsa:       ayanamsa,
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			data, err := chartService.GetChart(ctx, req)
			if err != nil {
				return fmt.Errorf("chart calculation failed: %w", err)
			}

			return printResult(data)
		},
	}

	cmd.Flags().StringVar(&houseSystem, "house-system", "", "house system (default Whole-Sign)")
	cmd.Flags().StringVar(&ayanamsa, "ayanamsa", "", "ayanamsa scheme (default Lahiri)")

	return cmd
}

func newTransitsCmd() *cobra.Command {
	var natalDatetimeStr string

	cmd := &cobra.Command{
		Use:   "transits",
		Short: "Compute today's Gochara (transit) reading against a natal Moon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if natalDatetimeStr == "" {
				return fmt.Errorf("--natal-date is required")
			}
			location, err := resolveLocation()
			if err != nil {
				return err
			}
			natalDate, err := time.Parse(time.RFC3339, natalDatetimeStr)
			if err != nil {
				return fmt.Errorf("invalid --natal-date: %w", err)
			}
			momentDate, err := resolveDate()
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			observer := observability.NewLocalObserver()
			chartService := api.NewService(ephemeris.NewSimplifiedAdapter(), observer)

			_, natalOffsetSeconds := natalDate.Zone()
			_, momentOffsetSeconds := momentDate.Zone()

			req := api.TransitRequest{
				Natal: api.ChartRequest{
					Date:           natalDate,
					Location:       location,
					UTCOffsetHours: float64(natalOffsetSeconds) / 3600.0,
				},
				Moment: api.ChartRequest{
					Date:           momentDate,
					Location:       location,
					UTCOffsetHours: float64(momentOffsetSeconds) / 3600.0,
				},
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			data, err := chartService.GetTransits(ctx, req)
			if err != nil {
				return fmt.Errorf("transit calculation failed: %w", err)
			}

			return printResult(data)
		},
	}

	cmd.Flags().StringVar(&natalDatetimeStr, "natal-date", "", "natal civil date-time, RFC3339")

	return cmd
}

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the built-in location presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for key, preset := range locationPresets {
				fmt.Printf("%-10s %-30s lat=%.4f lon=%.4f tz=%s\n", key, preset.Name, preset.Lat, preset.Lon, preset.TZ)
			}
			return nil
		},
	}
}

func printResult(data any) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
}
