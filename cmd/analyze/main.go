package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm/gemini"
	"resume-analyzer/internal/shared/config"
)

var (
	resumePath string
	jdText     string
	jdPath     string
	pretty     bool
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a resume analysis from the command line",
	Long: `analyze extracts text from a resume file, runs every analysis facet
against the configured Gemini model, and prints the resulting bundle as JSON.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume file (pdf, docx, or txt)")
	rootCmd.Flags().StringVar(&jdText, "jd", "", "job description text")
	rootCmd.Flags().StringVar(&jdPath, "jd-file", "", "path to a file containing the job description")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = rootCmd.MarkFlagRequired("resume")
	rootCmd.MarkFlagsMutuallyExclusive("jd", "jd-file")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	jd := jdText
	if jdPath != "" {
		raw, err := os.ReadFile(jdPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jd = string(raw)
	}

	text, err := extract.TextFromBytes(ctx, data, "", filepath.Base(resumePath))
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	cfg := config.Load()
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	svc := &analysis.Service{
		Client:       client,
		FacetTimeout: cfg.FacetTimeout,
		Parallelism:  cfg.FacetParallelism,
	}

	bundle, err := svc.Analyze(ctx, analysis.NewRequest(text, strings.TrimSpace(jd)))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(bundle)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
