// Package parsers reads the newline-delimited reference list files.
package parsers

import (
	"bufio"
	"io"
	"strings"

	logpkg "github.com/haukened/urlrisk/internal/urlrisk/common/log"
)

// ParseKeywordList parses one phishing keyword per line. Keywords are
// lower-cased.
func ParseKeywordList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	return parseList(r, source, logger, normalizeKeyword)
}

// ParseTLDList parses one suspicious TLD per line. A leading "." or "*." is
// optional in the file; every entry is returned with a single leading dot.
func ParseTLDList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	return parseList(r, source, logger, normalizeTLD)
}

// ParseDomainList parses one popular domain per line, canonicalized
// (lower-cased, trailing dots removed).
func ParseDomainList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	return parseList(r, source, logger, normalizeDomain)
}

// parseList implements the shared plain-list format.
//
// Behavior:
// - Supports comments starting with '#' (inline or whole-line)
// - Strips a UTF-8 BOM and surrounding whitespace
// - Skips empty lines and tokens the normalizer rejects
// - De-duplicates while preserving first-seen order
func parseList(r io.Reader, source string, logger logpkg.Logger, norm normalizer) ([]string, error) {
	scanner := bufio.NewScanner(r)

	seen := make(map[string]struct{})
	out := make([]string, 0, 64)
	logger.Debug(map[string]any{"source": source}, "parse_list_start")
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimPrefix(scanner.Text(), "\uFEFF")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if idx := strings.IndexByte(trimmed, '#'); idx >= 0 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}

		entry, ok := norm(trimmed)
		if !ok {
			logger.Debug(map[string]any{"source": source, "line": lineNum, "raw": trimmed}, "skip_invalid_entry")
			continue
		}
		if _, dup := seen[entry]; dup {
			logger.Debug(map[string]any{"source": source, "line": lineNum, "entry": entry}, "skip_duplicate")
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}

	if err := scanner.Err(); err != nil {
		logger.Debug(map[string]any{"source": source, "error": err.Error()}, "parse_list_scan_error")
		return nil, err
	}
	logger.Debug(map[string]any{"source": source, "count": len(out)}, "parse_list_done")
	return out, nil
}
