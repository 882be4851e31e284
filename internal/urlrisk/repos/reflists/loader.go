// Package reflists loads reference list overrides from disk.
package reflists

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	logpkg "github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/reflists/parsers"
)

// File names looked up inside a list directory.
const (
	KeywordsFile = "keywords.txt"
	TLDsFile     = "tlds.txt"
	DomainsFile  = "domains.txt"
)

type parseFunc func(r io.Reader, source string, logger logpkg.Logger) ([]string, error)

// LoadDirectory builds ReferenceLists from dir. Each of keywords.txt,
// tlds.txt and domains.txt replaces the matching compiled-in list; a missing
// file keeps the default. An empty dir returns the defaults unchanged.
func LoadDirectory(dir string, logger logpkg.Logger) (domain.ReferenceLists, error) {
	lists := domain.DefaultReferenceLists()
	if dir == "" {
		return lists, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return domain.ReferenceLists{}, fmt.Errorf("list directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return domain.ReferenceLists{}, fmt.Errorf("list directory %s: not a directory", dir)
	}

	steps := []struct {
		file  string
		parse parseFunc
		apply func(domain.ReferenceLists, []string) (domain.ReferenceLists, error)
	}{
		{KeywordsFile, parsers.ParseKeywordList, domain.ReferenceLists.WithPhishingKeywords},
		{TLDsFile, parsers.ParseTLDList, domain.ReferenceLists.WithSuspiciousTLDs},
		{DomainsFile, parsers.ParseDomainList, domain.ReferenceLists.WithPopularDomains},
	}
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		entries, found, err := readList(path, step.parse, logger)
		if err != nil {
			return domain.ReferenceLists{}, err
		}
		if !found {
			logger.Debug(map[string]any{"file": path}, "list file absent, keeping default")
			continue
		}
		if lists, err = step.apply(lists, entries); err != nil {
			return domain.ReferenceLists{}, fmt.Errorf("apply %s: %w", path, err)
		}
		logger.Info(map[string]any{"file": path, "entries": len(entries)}, "reference list loaded")
	}
	return lists, nil
}

func readList(path string, parse parseFunc, logger logpkg.Logger) ([]string, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parse(f, path, logger)
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, true, nil
}
