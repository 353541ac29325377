package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// fieldsPerLine is the number of whitespace-separated fields on a config line:
// name, service port and raft port.
const fieldsPerLine = 3

// maxLineBytes bounds a single configuration line.
const maxLineBytes = 64 * 1024

// Load reads the configuration file at path and returns the accepted
// instances in file order. Malformed lines and invalid names are logged and
// skipped; only a failure to open or read the file is returned as an error.
// Duplicate names are passed through unchanged.
func Load(path string, log *slog.Logger) ([]Config, error) {
	if log == nil {
		log = slog.Default()
	}

	f, err := os.Open(path) //nolint:gosec // G304: path is operator configuration
	if err != nil {
		return nil, fmt.Errorf("open instance config: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	configs, err := Parse(f, log.With("path", path))
	if err != nil {
		return nil, fmt.Errorf("read instance config %s: %w", path, err)
	}
	return configs, nil
}

// Parse reads instance lines from r. See Load for the skipping rules.
// Lines longer than maxLineBytes are skipped like any other malformed line.
// A nil log discards diagnostics.
func Parse(r io.Reader, log *slog.Logger) ([]Config, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var configs []Config
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if cfg, ok := parseLine(log, lineNo, strings.TrimRight(line, "\r\n")); ok {
				configs = append(configs, cfg)
			}
		}
		if errors.Is(err, io.EOF) {
			return configs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseLine turns one line into a Config. It reports false for lines that
// carry no instance or are rejected, logging the rejections.
func parseLine(log *slog.Logger, lineNo int, line string) (Config, bool) {
	if isBlankOrComment(line) {
		return Config{}, false
	}
	if len(line) > maxLineBytes {
		log.Warn("skipped: line too long", "line", lineNo, "bytes", len(line), "limit", maxLineBytes)
		return Config{}, false
	}

	fields := strings.Fields(line)
	if len(fields) != fieldsPerLine {
		log.Warn("skipped: unable to parse line",
			"line", lineNo, "content", line, "fields", len(fields))
		return Config{}, false
	}

	cfg, err := New(fields[0], fields[1], fields[2])
	if err != nil {
		log.Warn("skipped: invalid instance", "line", lineNo, "error", err)
		return Config{}, false
	}
	return cfg, true
}

// isBlankOrComment reports whether line carries no instance. Leading
// whitespace before a '#' still marks a comment.
func isBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
