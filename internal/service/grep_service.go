package service

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"minigrep/internal/config"
	"minigrep/internal/domain"
)

var _ domain.GrepService = (*GrepServiceImpl)(nil)

type GrepServiceImpl struct {
	searcher domain.Searcher
	logger   *slog.Logger
}

func NewGrepService(searcher domain.Searcher, logger *slog.Logger) *GrepServiceImpl {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GrepServiceImpl{searcher: searcher, logger: logger}
}

// LoadDocument reads and decodes the whole file at path.
// Every failure is reported as a *domain.IOError.
func (s *GrepServiceImpl) LoadDocument(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &domain.IOError{Path: path, Err: err}
	}
	text, err := DecodeText(data)
	if err != nil {
		return domain.Document{}, &domain.IOError{Path: path, Err: err}
	}
	s.logger.Debug("Document loaded.", "path", path, "bytes", len(data))
	return domain.Document{Path: path, Content: text}, nil
}

func (s *GrepServiceImpl) Search(document domain.Document, query string, caseInsensitive bool) []string {
	matches := s.searcher.Search(query, document.Content, caseInsensitive)
	s.logger.Debug("Search finished.", "path", document.Path, "query", query, "case_insensitive", caseInsensitive, "matches", len(matches))
	return matches
}

// Run loads cfg.FilePath, searches it and writes each matching line to out.
// Nothing is written when the file cannot be read. Zero matches is not an error.
func (s *GrepServiceImpl) Run(cfg config.Config, out io.Writer) error {
	doc, err := s.LoadDocument(cfg.FilePath)
	if err != nil {
		return err
	}
	matches := s.Search(doc, cfg.Query, cfg.CaseInsensitive)
	w := bufio.NewWriter(out)
	for _, line := range matches {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
