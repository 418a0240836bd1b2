package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ghstats/internal/dashboard"
	"ghstats/internal/generator"
	"ghstats/internal/pipeline"
	"ghstats/internal/render"
	"ghstats/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rawOutput bool

	readmeOpts    generator.ReadmeOptions
	readmeOut     string
	readmePreview bool

	serveAddr string
)

var statsCmd = &cobra.Command{
	Use:   "stats <repo-url>",
	Short: "Show statistics for a GitHub repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context(), logger)
		if err != nil {
			return err
		}
		fmt.Printf("🔍 Fetching repository: %s\n", args[0])
		repo, err := svc.RepoStats(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch repository: %w", err)
		}
		fmt.Println(render.New(render.DefaultTheme()).RepoCard(*repo))
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <profile-url|username>",
	Short: "Generate an AI analysis of a GitHub profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context(), logger)
		if err != nil {
			return err
		}
		if !svc.HasAnalyzer() {
			fmt.Println("⚠️  No AI API key configured. Only profile data will be shown.")
		}

		fmt.Printf("🧠 Analyzing profile: %s\n", args[0])
		report, err := svc.AnalyzeProfile(cmd.Context(), args[0])
		if report == nil {
			return fmt.Errorf("failed to analyze profile: %w", err)
		}

		r := render.New(render.DefaultTheme())
		fmt.Println(r.ProfileCard(report.Profile.User))
		if report.Analysis != nil {
			if rawOutput {
				fmt.Println(report.Analysis.Text)
			} else {
				fmt.Println(r.Report(report.Analysis.Text))
			}
		}
		if top := r.TopRepos(report.Profile.Repos, render.DefaultTopRepos); top != "" {
			fmt.Println(top)
		}

		if errors.Is(err, pipeline.ErrAnalyzerUnavailable) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to generate analysis: %w", err)
		}
		fmt.Printf("✅ Analysis complete: %d sections\n", len(report.Sections))
		return nil
	},
}

var readmeCmd = &cobra.Command{
	Use:   "readme <name>",
	Short: "Generate a README template for a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := readmeOpts
		opts.Name = args[0]
		md, err := generator.RenderReadme(opts)
		if err != nil {
			return err
		}

		if readmeOut != "" {
			if err := os.WriteFile(readmeOut, []byte(md), 0o644); err != nil {
				return fmt.Errorf("failed to write README: %w", err)
			}
			fmt.Printf("✅ README written to %s\n", readmeOut)
		}
		switch {
		case readmePreview:
			out, err := render.Markdown(md, 100, "")
			if err != nil {
				return err
			}
			fmt.Print(out)
		case readmeOut == "":
			fmt.Print(md)
		}
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The alternate screen owns the terminal, so stderr logging stays off.
		svc, err := newService(cmd.Context(), zap.NewNop())
		if err != nil {
			return err
		}
		return dashboard.Run(svc, render.DefaultTheme())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve repository stats, profile analysis and README templates over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := newService(ctx, logger)
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}
		srv := server.New(svc, server.WithAddr(addr), server.WithLogger(logger))
		if err := srv.Start(ctx); err != nil {
			return err
		}
		fmt.Printf("🌐 Serving on http://%s (Ctrl+C to stop)\n", srv.Addr())
		return srv.Wait(ctx)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the analysis text without section formatting")

	readmeCmd.Flags().StringVar(&readmeOpts.Owner, "owner", "", "GitHub owner used in the clone URL")
	readmeCmd.Flags().StringVar(&readmeOpts.Author, "author", "", "Author line")
	readmeCmd.Flags().StringVar(&readmeOpts.InstallCmd, "install", "", "Install command (default \"npm install\")")
	readmeCmd.Flags().StringVar(&readmeOpts.UsageCmd, "usage", "", "Usage command (default \"npm start\")")
	readmeCmd.Flags().StringVarP(&readmeOut, "out", "o", "", "Write the README to this file")
	readmeCmd.Flags().BoolVar(&readmePreview, "preview", false, "Render the README in the terminal")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}
