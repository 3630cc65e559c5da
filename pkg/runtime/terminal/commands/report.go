package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/de-tools/finreport/pkg/runtime/logging"
	"github.com/de-tools/finreport/pkg/runtime/terminal/export"
	"github.com/de-tools/finreport/pkg/runtime/terminal/status"
	"github.com/de-tools/finreport/pkg/services/config"
	"github.com/de-tools/finreport/pkg/services/loader"
	"github.com/de-tools/finreport/pkg/services/report"
	"github.com/de-tools/finreport/pkg/services/source"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ErrConflictingInput = errors.New("--input cannot be combined with a file argument")

type ReportCmd struct {
	interactive  bool
	configFile   string
	profile      string
	profilesFile string
	registry     source.Registry
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
}

type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func NewReportCmd(registry source.Registry, streams Streams) *cobra.Command {
	rc := &ReportCmd{
		registry: registry,
		in:       streams.In,
		out:      streams.Out,
		errOut:   streams.ErrOut,
	}
	cmd := &cobra.Command{
		Use:   "finreport [file]",
		Short: "Financial report generator",
		Long: fmt.Sprintf("Validate revenue/profit pairs and print them as a table.\n\n"+
			"Input is read from a %s file, typed in with --input, or taken from a built-in sample.",
			strings.Join(registry.Extensions(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: rc.run,
	}

	cmd.Flags().BoolVarP(&rc.interactive, "input", "i", false, "Read revenue and profit pairs from standard input")
	cmd.Flags().StringVar(&rc.configFile, "config", "", "Path to a settings file (yaml, toml or json)")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Settings profile to apply")
	cmd.Flags().StringVar(&rc.profilesFile, "profiles-file", config.DefaultProfilesPath(), "Path to the profiles file")

	// Settings flags are read back through config.Load
	cmd.Flags().StringP("format", "f", "simple", "Table style: "+strings.Join(export.StyleNames(), ", "))
	cmd.Flags().Bool("summary", true, "Print totals below the table")
	cmd.Flags().Bool("dedupe", false, "Drop repeated revenue/profit pairs")
	cmd.Flags().String("rev-key", source.DefaultRevenueKey, "JSON key holding the revenue")
	cmd.Flags().String("prof-key", source.DefaultProfitKey, "JSON key holding the profit")
	cmd.Flags().String("color", "auto", "Colour output: auto, always, never")
	cmd.Flags().String("title", report.DefaultTitle, "Report title")
	cmd.Flags().String("export", "", "Also write the report to a .csv or .xlsx file")
	cmd.Flags().String("log-level", "error", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-file", "", "Append logs to this file instead of stderr")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	if rc.interactive && len(args) > 0 {
		return ErrConflictingInput
	}

	settings, err := config.Load(config.LoadOptions{
		ConfigFile:   rc.configFile,
		Profile:      rc.profile,
		ProfilesFile: rc.profilesFile,
		Flags:        cmd.Flags(),
	})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	style, err := export.ParseStyle(settings.Format)
	if err != nil {
		return err
	}

	src, err := rc.selectSource(args, settings)
	if err != nil {
		return err
	}
	// arguments are settled, later failures are not usage errors
	cmd.SilenceUsage = true

	logger, closer, err := logging.New(logging.Options{
		Level:  settings.LogLevel,
		File:   settings.LogFile,
		Stderr: rc.errOut,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx := logger.WithContext(cmd.Context())

	useColor := colorEnabled(settings.Color, rc.out)
	printer := status.NewPrinter(rc.out, useColor)
	printer.Info("Generating report for: %s", src.Name())

	ld := loader.New(loader.Options{Dedupe: settings.Dedupe}, status.NewListener(printer, rc.interactive))
	result := ld.Load(ctx, src)
	if n := len(result.Rejections); n > 0 {
		printer.Info("Skipped %d invalid row(s)", n)
	}
	if result.Duplicates > 0 {
		printer.Info("Dropped %d duplicate row(s)", result.Duplicates)
	}

	rep := report.Build(result.Source, result.Records, report.Options{
		Title:   settings.Title,
		Summary: settings.Summary,
	})

	reporter := export.NewReporter(rc.out, export.TableConfig{Style: style, Color: useColor})
	if err := reporter.Handle(rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	logger.Debug().Str("style", string(style)).Int("rows", len(rep.Rows)).Msg("report rendered")

	if settings.Export != "" {
		if err := export.WriteFile(settings.Export, rep); err != nil {
			logger.Error().Err(err).Str("path", settings.Export).Msg("failed to export report")
			printer.Error("Error exporting report: %v", err)
			return nil
		}
		printer.Success("Report exported to %s", settings.Export)
	}
	return nil
}

func (rc *ReportCmd) selectSource(args []string, settings *config.Settings) (source.Source, error) {
	switch {
	case rc.interactive:
		return source.NewInteractive(rc.in, rc.out), nil
	case len(args) == 1:
		src, err := rc.registry.Create(args[0], source.Options{
			RevenueKey: settings.RevKey,
			ProfitKey:  settings.ProfKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		return src, nil
	default:
		return source.NewHardcoded(), nil
	}
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
