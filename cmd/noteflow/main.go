package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/noteflow/internal/audio"
	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/formatter"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
	"github.com/nguyentantai21042004/noteflow/internal/notes"
	"github.com/nguyentantai21042004/noteflow/internal/pipeline"
	"github.com/nguyentantai21042004/noteflow/internal/transcriber"
	"github.com/nguyentantai21042004/noteflow/internal/watcher"
	"github.com/nguyentantai21042004/noteflow/pkg/executor"
)

const (
	exitSuccess     = 0
	exitError       = 1
	exitInterrupted = 130
)

type cliFlags struct {
	configPath string

	input   string
	batch   string
	url     string
	record  int
	watch   bool

	subject      string
	language     string
	format       string
	detail       string
	maxQuestions int
	keepAudio    bool
	output       string
}

func main() {
	os.Exit(run())
}

func run() int {
	var f cliFlags
	flag.StringVar(&f.configPath, "config", "config.yaml", "path to the YAML config file")
	flag.StringVar(&f.input, "input", "", "local audio/video file to process")
	flag.StringVar(&f.batch, "batch", "", "glob pattern of audio files to process as a batch")
	flag.StringVar(&f.url, "url", "", "remote video URL to process")
	flag.IntVar(&f.record, "record", 0, "record N seconds from the microphone and process the capture")
	flag.BoolVar(&f.watch, "watch", false, "watch the configured inbox directory for new recordings")
	flag.StringVar(&f.subject, "subject", "", "subject for the notes (default from config)")
	flag.StringVar(&f.language, "language", "", "transcript language: bn, en or auto (default from config)")
	flag.StringVar(&f.format, "format", "", "output format: markdown, html, txt, pdf or docx (default from config)")
	flag.StringVar(&f.detail, "detail", "", "summary detail level: minimal, standard or detailed (default from config)")
	flag.IntVar(&f.maxQuestions, "max-questions", -1, "maximum quiz questions (default from config)")
	flag.BoolVar(&f.keepAudio, "keep-audio", false, "keep the normalized audio artifact after the run")
	flag.StringVar(&f.output, "output", "", "output file path (single-input modes only)")
	flag.Parse()

	// Secrets (GEMINI_API_KEYS, OPENAI_API_KEY) live in the environment.
	_ = godotenv.Load()

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	params, err := buildParams(cfg, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitError
	}

	orch, err := buildOrchestrator(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitError
	}

	switch countModes(f) {
	case 0:
		fmt.Fprintln(os.Stderr, "One of -input, -batch, -url, -record or -watch is required")
		flag.Usage()
		return exitError
	case 1:
	default:
		fmt.Fprintln(os.Stderr, "-input, -batch, -url, -record and -watch are mutually exclusive")
		return exitError
	}

	switch {
	case f.watch:
		return runWatch(ctx, cfg, orch, params, log)
	case f.batch != "":
		return runBatch(ctx, orch, params, f.batch, log)
	case f.record > 0:
		return runRecord(ctx, orch, params, time.Duration(f.record)*time.Second, f.output, log)
	default:
		source := domain.LocalFile(f.input)
		if f.url != "" {
			source = domain.RemoteURL(f.url)
		}
		params.OutputPath = f.output
		return runSingle(ctx, orch, params, source, log)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func countModes(f cliFlags) int {
	n := 0
	for _, set := range []bool{f.input != "", f.batch != "", f.url != "", f.record > 0, f.watch} {
		if set {
			n++
		}
	}
	return n
}

// buildParams folds CLI overrides over the config snapshot.
func buildParams(cfg *config.Config, f cliFlags) (pipeline.RunParams, error) {
	pick := func(flagVal, cfgVal string) string {
		if flagVal != "" {
			return flagVal
		}
		return cfgVal
	}

	lang, err := domain.ParseLanguageHint(pick(f.language, cfg.Notes.Language))
	if err != nil {
		return pipeline.RunParams{}, err
	}
	format, err := domain.ParseOutputFormat(pick(f.format, cfg.Notes.OutputFormat))
	if err != nil {
		return pipeline.RunParams{}, err
	}
	detail, err := domain.ParseDetailLevel(pick(f.detail, cfg.Notes.DetailLevel))
	if err != nil {
		return pipeline.RunParams{}, err
	}

	maxQuestions := cfg.Notes.MaxQuizQuestions
	if f.maxQuestions >= 0 {
		maxQuestions = f.maxQuestions
	}

	return pipeline.RunParams{
		Subject:      pick(f.subject, cfg.Notes.Subject),
		Language:     lang,
		Detail:       detail,
		Format:       format,
		MaxQuestions: maxQuestions,
		KeepAudio:    f.keepAudio || cfg.Notes.KeepAudio,
	}, nil
}

func buildOrchestrator(cfg *config.Config, log logger.Logger) (pipeline.Orchestrator, error) {
	exec := executor.New()

	trans, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	summarizer, err := notes.NewSummarizer(cfg, geminiKeys(), log)
	if err != nil {
		return nil, err
	}

	return pipeline.New(
		cfg,
		audio.New(cfg, exec, log),
		trans,
		notes.NewKeypointExtractor(log),
		summarizer,
		notes.NewQuizGenerator(log),
		formatter.New(),
		log,
	), nil
}

func geminiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// interruptContext cancels the returned context on SIGINT/SIGTERM.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func runSingle(ctx context.Context, orch pipeline.Orchestrator, params pipeline.RunParams, source domain.AudioSource, log logger.Logger) int {
	ctx, cancel := interruptContext(ctx)
	defer cancel()

	result := orch.Run(ctx, source, params)
	printResult(result)
	return exitCode(result.Status)
}

// runRecord captures from the microphone, then feeds the capture through the
// same pipeline run. The first interrupt stops the recording and keeps the
// partial capture; a second interrupt cancels the whole run.
func runRecord(ctx context.Context, orch pipeline.Orchestrator, params pipeline.RunParams, duration time.Duration, output string, log logger.Logger) int {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopRecording := make(chan struct{})
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		log.Info(runCtx, "Interrupt received, stopping recording (interrupt again to abort)")
		close(stopRecording)
		<-sigChan
		cancel()
	}()

	params.OutputPath = output
	result := orch.Run(runCtx, domain.MicrophoneCapture(duration, stopRecording), params)
	printResult(result)
	return exitCode(result.Status)
}

func runBatch(ctx context.Context, orch pipeline.Orchestrator, params pipeline.RunParams, pattern string, log logger.Logger) int {
	ctx, cancel := interruptContext(ctx)
	defer cancel()

	paths, err := discoverAudioFiles(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad glob pattern %q: %v\n", pattern, err)
		return exitError
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No files match %q\n", pattern)
		return exitError
	}

	sources := make([]domain.AudioSource, len(paths))
	for i, p := range paths {
		sources[i] = domain.LocalFile(p)
	}

	results := orch.RunBatch(ctx, sources, params)

	failed := 0
	for _, r := range results {
		printResult(r)
		if r.Status != domain.StatusSuccess {
			failed++
		}
	}
	fmt.Printf("Batch: %d/%d succeeded\n", len(results)-failed, len(results))

	if ctx.Err() != nil {
		return exitInterrupted
	}
	if failed > 0 {
		return exitError
	}
	return exitSuccess
}

func runWatch(ctx context.Context, cfg *config.Config, orch pipeline.Orchestrator, params pipeline.RunParams, log logger.Logger) int {
	if cfg.Paths.Watch == "" {
		fmt.Fprintln(os.Stderr, "Watch mode requires paths.watch in the config")
		return exitError
	}
	if err := os.MkdirAll(cfg.Paths.Watch, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create watch directory: %v\n", err)
		return exitError
	}

	ctx, cancel := interruptContext(ctx)
	defer cancel()

	handler := func(ctx context.Context, path string) error {
		result := orch.Run(ctx, domain.LocalFile(path), params)
		printResult(result)
		if result.Status != domain.StatusSuccess {
			return fmt.Errorf("%s: %s", result.ErrorKind, result.ErrorMessage)
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Watch, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create watcher: %v\n", err)
		return exitError
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		return exitError
	}
	return exitInterrupted
}

// discoverAudioFiles expands a glob pattern into a sorted list of inputs.
func discoverAudioFiles(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func printResult(r domain.PipelineRunResult) {
	switch r.Status {
	case domain.StatusSuccess:
		fmt.Printf("[OK] %s -> %s (transcript %d chars, %d key points, %d questions, %s)\n",
			r.Source, r.OutputPath, r.TranscriptChars, r.KeyPointCount, r.QuizCount, r.Elapsed.Round(time.Millisecond))
	default:
		fmt.Printf("[%s] %s: %s (%s)\n", strings.ToUpper(string(r.Status)), r.Source, r.ErrorMessage, r.ErrorKind)
	}
}

func exitCode(status domain.RunStatus) int {
	switch status {
	case domain.StatusSuccess:
		return exitSuccess
	case domain.StatusInterrupted:
		return exitInterrupted
	default:
		return exitError
	}
}
