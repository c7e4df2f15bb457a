package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser is the contract for turning raw statement bytes into records.
type Parser interface {
	ProcessBytes(data []byte, filename string) ([]Record, error)
}

// Manifest describes a batch of statement files to import.
type Manifest struct {
	Statements []Statement `yaml:"statements"`
}

// Statement is a single statement file to be processed. Type is
// informational; the parser dispatches on the file extension. A non-empty
// Category forces every parsed record into that category.
type Statement struct {
	Type     string   `yaml:"type"`
	FilePath string   `yaml:"file"`
	Category Category `yaml:"category"`
}

// File returns the path to the statement file, expanding ~.
func (s *Statement) File() (string, error) {
	if strings.HasPrefix(s.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, s.FilePath[2:]), nil
	}
	return s.FilePath, nil
}

// Records reads the statement file and uses the provided parser to return
// ledger record candidates.
func (s *Statement) Records(p Parser) ([]Record, error) {
	filePath, err := s.File()
	if err != nil {
		return nil, err
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file %s: %w", filePath, err)
	}

	records, err := p.ProcessBytes(fileBytes, filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to process statement file %s: %w", filePath, err)
	}

	if s.Category != "" {
		for i := range records {
			records[i].Category = s.Category
		}
	}

	return records, nil
}

// ManifestFromFile reads a manifest from a YAML file.
func ManifestFromFile(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	for i, st := range manifest.Statements {
		if st.FilePath == "" {
			return nil, fmt.Errorf("manifest statement %d has no file", i)
		}
		if st.Category != "" && !st.Category.Valid() {
			return nil, fmt.Errorf("manifest statement %d has unknown category %q", i, st.Category)
		}
	}

	return &manifest, nil
}
