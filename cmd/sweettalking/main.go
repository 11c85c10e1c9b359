package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/sweettalking/internal/audio"
	"github.com/linuxmatters/sweettalking/internal/cli"
	"github.com/linuxmatters/sweettalking/internal/logging"
	"github.com/linuxmatters/sweettalking/internal/mains"
	"github.com/linuxmatters/sweettalking/internal/processor"
	"github.com/linuxmatters/sweettalking/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Verbose          bool   `short:"v" help:"Show the engine's own output while processing"`
	Analyze          bool   `short:"a" help:"Report silence periods without writing any output"`
	SilenceThreshold string `default:"-35dB" placeholder:"level" help:"Level below which audio counts as silence"`
	SilenceDuration  string `default:"0.4" placeholder:"seconds" help:"Minimum silence length to detect or trim"`
	TargetLoudness   string `default:"-16" placeholder:"lufs" help:"Integrated loudness target for normalisation"`
	HumRemoval       bool   `help:"Notch out mains hum at the local grid frequency"`
	Logs             bool   `help:"Write a processing report next to the output file"`
	Version          bool   `help:"Show version information"`

	Input  string `arg:"" optional:"" type:"path" help:"Recording to clean up"`
	Output string `arg:"" optional:"" type:"path" help:"Destination path (default: <input>_processed<ext>)"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("sweettalking"),
		kong.Description("Clean up voice recordings for podcast release"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Probe for the engine before anything touches the input path, so a
	// missing ffmpeg reports the same way whatever else is wrong.
	engine, err := processor.NewEngine()
	if err != nil {
		cli.PrintError(err.Error())
		fmt.Fprintln(os.Stderr, "Install ffmpeg and make sure it is on your PATH.")
		os.Exit(1)
	}

	// Validate input
	if cliArgs.Input == "" {
		cli.PrintError("No input file specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	config := buildConfig(cliArgs)

	if cliArgs.Analyze {
		os.Exit(runAnalysis(engine, cliArgs, config))
	}
	os.Exit(runProcessing(engine, cliArgs, config))
}

// buildConfig assembles the filter configuration for this run. Flag values
// land in the chain verbatim; nothing mutates the configuration afterwards.
func buildConfig(args *CLI) *processor.FilterChainConfig {
	config := processor.DefaultFilterConfig()
	config.SilenceThreshold = args.SilenceThreshold
	config.SilenceDuration = args.SilenceDuration
	config.TargetLoudness = args.TargetLoudness

	if args.HumRemoval {
		notches := processor.HumNotchStages(mains.Frequency())
		config.EQStages = append(notches, config.EQStages...)
	}

	return config
}

// runAnalysis reports silence periods and always exits zero: a diagnostic
// pass that fails is worth a warning, not a failed run. No output file is
// ever written here.
func runAnalysis(engine *processor.Engine, args *CLI, config *processor.FilterChainConfig) int {
	var report *processor.SilenceReport
	var err error

	if args.Verbose {
		fmt.Printf("Analyzing silence in %s...\n", args.Input)
		report, err = engine.AnalyzeSilence(args.Input, config)
	} else {
		report, err = analyzeWithUI(engine, args.Input, config)
	}

	if err != nil {
		cli.PrintWarning(fmt.Sprintf("Analysis failed: %v", err))
		return 0
	}

	meta := probeInput(args.Input)
	tips := logging.GenerateSilenceTips(report, meta)
	logging.DisplaySilenceReport(os.Stdout, report, meta, tips)
	return 0
}

// analyzeWithUI runs the detector behind a spinner. Same channel scheme as
// processWithUI: the report cannot be lost to a display failure.
func analyzeWithUI(engine *processor.Engine, inputPath string, config *processor.FilterChainConfig) (*processor.SilenceReport, error) {
	model := ui.NewAnalysisModel(inputPath)
	p := tea.NewProgram(model, tea.WithAltScreen())

	type outcome struct {
		report *processor.SilenceReport
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		report, err := engine.AnalyzeSilence(inputPath, config)
		done <- outcome{report, err}
		p.Send(ui.AnalysisCompleteMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintWarning(fmt.Sprintf("Display error: %v", err))
	}

	o := <-done
	return o.report, o.err
}

func runProcessing(engine *processor.Engine, args *CLI, config *processor.FilterChainConfig) int {
	inputPath := args.Input
	outputPath := args.Output
	if outputPath == "" {
		outputPath = processor.DefaultOutputPath(inputPath)
	}

	before := probeInput(inputPath)
	startTime := time.Now()

	var result *processor.ProcessingResult
	var err error
	if args.Verbose {
		printRunPlan(inputPath, outputPath, config)
		result, err = engine.ProcessAudio(inputPath, outputPath, config, processor.ProcessOptions{Verbose: true})
	} else {
		result, err = processWithUI(engine, inputPath, outputPath, config, before)
	}

	if err != nil {
		cli.PrintError(err.Error())
		return 1
	}

	if args.Verbose {
		fmt.Println("✓ Processing complete!")
	}
	fmt.Printf("File size: %.2fMB → %.2fMB (%.1f%% reduction)\n",
		toMB(result.InputSize), toMB(result.OutputSize), result.ReductionPercent())

	if args.Logs {
		data := logging.ReportData{
			Version:   version,
			StartTime: startTime,
			EndTime:   time.Now(),
			Result:    result,
			Config:    config,
			Before:    before,
			After:     probeInput(result.OutputPath),
		}
		if err := logging.GenerateReport(data); err != nil {
			cli.PrintWarning(fmt.Sprintf("Could not write report: %v", err))
		}
	}

	return 0
}

// processWithUI runs the engine behind the progress display. The result
// travels over its own channel so a display failure, or the user dropping
// out of the UI, can never lose the engine's outcome.
func processWithUI(engine *processor.Engine, inputPath, outputPath string, config *processor.FilterChainConfig, before *audio.Metadata) (*processor.ProcessingResult, error) {
	var duration time.Duration
	if before != nil {
		duration = time.Duration(before.Duration * float64(time.Second))
	}

	model := ui.NewModel(inputPath, outputPath, duration)
	p := tea.NewProgram(model, tea.WithAltScreen())

	type outcome struct {
		result *processor.ProcessingResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		opts := processor.ProcessOptions{
			Progress: func(outTime time.Duration) {
				p.Send(ui.ProgressMsg{OutTime: outTime})
			},
		}
		result, err := engine.ProcessAudio(inputPath, outputPath, config, opts)
		done <- outcome{result, err}
		p.Send(ui.CompleteMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintWarning(fmt.Sprintf("Display error: %v", err))
	}

	// Blocks until the engine is finished, whatever happened to the UI.
	o := <-done
	return o.result, o.err
}

// printRunPlan shows what a verbose run is about to do.
func printRunPlan(inputPath, outputPath string, config *processor.FilterChainConfig) {
	fmt.Printf("%s %s\n", cli.KeyStyle.Render("Processing:"), cli.ValueStyle.Render(inputPath))
	fmt.Printf("%s %s\n", cli.KeyStyle.Render("Output:"), cli.ValueStyle.Render(outputPath))
	fmt.Printf("%s %s\n", cli.KeyStyle.Render("Filter chain:"), config.BuildFilterSpec())
	fmt.Println()
}

// probeInput reads metadata when ffprobe is around. nil just means the
// callers skip their metadata displays.
func probeInput(path string) *audio.Metadata {
	prober, err := audio.NewProber()
	if err != nil {
		return nil
	}
	meta, err := prober.Probe(path)
	if err != nil {
		return nil
	}
	return meta
}

func toMB(size int64) float64 {
	return float64(size) / (1024 * 1024)
}
