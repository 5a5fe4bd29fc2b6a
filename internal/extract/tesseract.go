package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
)

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		slog.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10), // cap at 8KB
		)
	} else {
		slog.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// TesseractConfig configures the local extraction fallback.
type TesseractConfig struct {
	Tesseract   string // tesseract binary, default "tesseract"
	Pdftotext   string // pdftotext binary, default "pdftotext"
	Lang        string // default "pol+eng"
	TessdataDir string
	Runner      Runner
}

// TesseractExtractor is a local, offline extractor that shells out to
// tesseract for images and pdftotext for PDFs. It yields only a full_text
// field; it exists so documents keep moving when the vision service is
// unavailable.
type TesseractExtractor struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

func NewTesseractExtractor(cfg TesseractConfig, logger *slog.Logger) *TesseractExtractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Lang == "" {
		cfg.Lang = "pol+eng"
	}
	runner := cfg.Runner
	if runner == nil {
		runner = execRunner{}
	}
	return &TesseractExtractor{cfg: cfg, runner: runner, logger: logger}
}

func (e *TesseractExtractor) Extract(ctx context.Context, content []byte, fileExt string) (Result, error) {
	format := constants.MapExtToFormat(fileExt)
	if format == "" {
		return Result{}, fmt.Errorf("extension %q: %w", fileExt, ErrUnsupportedFormat)
	}

	tmp, err := os.CreateTemp("", "docpipe-*."+constants.NormalizeExt(fileExt))
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("close temp file: %w", err)
	}

	var text string
	switch format {
	case constants.PDF:
		text, err = e.pdfToText(ctx, tmp.Name())
	case constants.IMAGE:
		text, err = e.imageOCR(ctx, tmp.Name())
	}
	if err != nil {
		return Result{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("document produced no text: %w", ErrCorruptFile)
	}
	return Result{
		Fields:     map[string]string{"full_text": text},
		Confidence: heuristicConfidence(text),
		Method:     "tesseract",
	}, nil
}

func (e *TesseractExtractor) pdfToText(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func (e *TesseractExtractor) imageOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// heuristicConfidence is a cheap signal for operators: mostly-printable,
// reasonably long output scores higher.
func heuristicConfidence(text string) float32 {
	if len(text) < 16 {
		return 0.2
	}
	printable := 0
	for _, r := range text {
		if r >= 0x20 || r == '\n' || r == '\t' {
			printable++
		}
	}
	conf := float32(printable) / float32(len([]rune(text)))
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
