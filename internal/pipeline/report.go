package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
)

// FileResult is the outcome for one component.
type FileResult struct {
	Path         string   `json:"path"`
	Output       string   `json:"output,omitempty"`
	Hash         string   `json:"hash,omitempty"`
	Unchanged    bool     `json:"unchanged,omitempty"`
	Chain        []string `json:"chain,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Error        string   `json:"error,omitempty"`
	Kind         string   `json:"kind,omitempty"`
	DurationMs   float64  `json:"duration_ms"`
}

// Report summarizes one target.
type Report struct {
	BuildID    string       `json:"build_id"`
	Root       string       `json:"root"`
	Pattern    string       `json:"pattern"`
	Files      []FileResult `json:"files"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Unchanged  int          `json:"unchanged"`
	DurationMs float64      `json:"duration_ms"`
}

// WriteReport writes reports as indented JSON to path. A path ending in
// .gz is gzip compressed.
func WriteReport(path string, reports []*Report) error {
	data, err := sonic.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if compressed(path) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress report: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress report: %w", err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) ([]*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if compressed(path) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompress report: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("decompress report: %w", err)
		}
	}
	var reports []*Report
	if err := sonic.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return reports, nil
}

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}
