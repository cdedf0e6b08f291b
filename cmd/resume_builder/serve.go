package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/spelling"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for spell checking, text generation, and PDF resume generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	speller := spelling.NewService(spelling.NewChecker())
	generator := generation.NewClient(generation.Config{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.APIURL,
		Timeout:     cfg.Timeout,
		MaxLength:   cfg.MaxLength,
		Temperature: cfg.Temperature,
	})
	renderer := render.New(cfg.Font, cfg.FontSize, cfg.TitleSize)

	srv := server.New(server.Config{Port: servePort}, speller, generator, renderer)
	return srv.Start()
}
