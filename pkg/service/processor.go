package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/fintrack/pkg/ledger"
	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/parser"
)

// Processor imports bank statements into the ledger, skipping records that
// are already present.
type Processor struct {
	logger  *log.Logger
	parser  *parser.Parser
	tracker *ledger.Tracker
}

func NewProcessor(logger *log.Logger, parser *parser.Parser, tracker *ledger.Tracker) *Processor {
	return &Processor{
		logger:  logger,
		parser:  parser,
		tracker: tracker,
	}
}

// ImportBytes parses statement bytes and merges the records into the ledger.
// It returns how many records were actually added.
func (p *Processor) ImportBytes(data []byte, filename string) (int, error) {
	records, err := p.parser.ProcessBytes(data, filename)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", filename, err)
	}
	return p.merge(records)
}

// ImportFile imports a single statement file.
func (p *Processor) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading statement: %w", err)
	}
	return p.ImportBytes(data, filepath.Base(path))
}

// ImportDirectory imports every supported statement file in dir. Failures on
// individual files are logged and skipped so one bad statement does not block
// the rest.
func (p *Processor) ImportDirectory(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("error reading directory: %w", err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !parser.SupportedFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		p.logger.Info("processing file", "path", path)

		added, err := p.ImportFile(path)
		if err != nil {
			p.logger.Error("failed to process file", "file", entry.Name(), "error", err)
			continue
		}

		total += added
		p.logger.Info("processed file successfully", "input", path, "added", added)
	}

	return total, nil
}

// ImportManifest imports every statement a manifest describes.
func (p *Processor) ImportManifest(m *models.Manifest) (int, error) {
	total := 0
	for i := range m.Statements {
		st := &m.Statements[i]

		records, err := st.Records(p.parser)
		if err != nil {
			return total, fmt.Errorf("manifest statement %s: %w", st.FilePath, err)
		}

		added, err := p.merge(records)
		total += added
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// merge adds records that are not in the ledger yet, keyed by record identity.
func (p *Processor) merge(records []models.Record) (int, error) {
	seen := make(map[string]bool, p.tracker.Len())
	for _, r := range p.tracker.Records() {
		seen[r.ID()] = true
	}

	added := 0
	for _, r := range records {
		if seen[r.ID()] {
			p.logger.Debug("skipping duplicate record", "id", r.ID(), "date", r.Date)
			continue
		}
		if err := p.tracker.Add(r); err != nil {
			return added, err
		}
		seen[r.ID()] = true
		added++
	}
	return added, nil
}
