package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/spelling"
	"github.com/jonathan/resume-builder/internal/tui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a resume interactively",
	Long:  `Open the interactive form to fill in resume details, check spelling, generate text with AI assistance, and save the finished resume as a PDF in the current directory.`,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
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

	program := tea.NewProgram(tui.New(speller, generator, renderer), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("form exited with an error: %w", err)
	}
	return nil
}
