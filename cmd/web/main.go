package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/sm-tools/social-pulse/pkg/server"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

var profilesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Social Pulse",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.socialpulse/profiles.ini", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", defaultPath,
		"Path to the brand profiles file (default is $HOME/.socialpulse/profiles.ini)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	profiles, err := config.NewRegistry(profilesPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", profilesPath).
			Msg("no profiles file found, serving the built-in dataset only")
		profiles = config.NewStaticRegistry(config.Profile{
			Name: "nike", Brand: "Nike", Period: "2025", SourceKind: "static",
		})
	}

	found, _ := profiles.GetProfiles(ctx)
	logger.Info().Msgf("Serving the following brand profiles:")
	for _, profile := range found {
		logger.Info().Msgf("Name: `%s`, Brand: `%s`, Source: `%s`", profile.Name, profile.Brand, profile.SourceKind)
	}

	sources := source.NewRegistry(map[string]source.Factory{
		"static": source.StaticFactory,
		"csv":    source.CSVFactory,
		"duckdb": source.DuckDBFactory,
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Profiles: profiles,
			Sources:  sources,
			Logger:   logger,
		},
	})

	return api.Start()
}
