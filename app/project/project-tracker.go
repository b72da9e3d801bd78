package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	config "github.com/Guerrilla-Interactive/nextgen-ignore/internal"
)

// GenerationRecord stores what was generated for one ignore file.
type GenerationRecord struct {
	Path          string   `json:"path"`          // Absolute path of the generated file
	Templates     []string `json:"templates"`     // Templates chosen on the last run
	Overridden    bool     `json:"overridden"`    // Whether custom rules were dropped on the last run
	GenerateCount int      `json:"generateCount"` // Times the file was generated
	LastGenerated int64    `json:"lastGenerated"` // Unix timestamp of the last run
}

// ProjectRegistry keeps a history of generated files across projects.
// It is informational only; selections are always re-derived from disk.
type ProjectRegistry struct {
	Projects     map[string]GenerationRecord `json:"projects"`
	LastUsedPath string                      `json:"lastUsedPath"`
	GlobalUsages int                         `json:"globalUsages"`
	RegistryPath string                      `json:"-"`
	mu           sync.RWMutex
}

// registryFileName is the name of the file used to store the registry.
const registryFileName = "projects.json"

// LoadProjectRegistry loads the registry from the configuration directory.
func LoadProjectRegistry() (*ProjectRegistry, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadProjectRegistryFrom(filepath.Join(dir, registryFileName))
}

// LoadProjectRegistryFrom loads the registry stored at registryPath.
// A missing file yields an empty registry.
func LoadProjectRegistryFrom(registryPath string) (*ProjectRegistry, error) {
	registry := &ProjectRegistry{
		Projects:     make(map[string]GenerationRecord),
		RegistryPath: registryPath,
	}

	data, err := os.ReadFile(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("error reading registry file %s: %w", registryPath, err)
	}

	if err := json.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("error unmarshalling registry file %s: %w. File might be corrupt", registryPath, err)
	}
	if registry.Projects == nil {
		registry.Projects = make(map[string]GenerationRecord)
	}
	registry.RegistryPath = registryPath
	return registry, nil
}

// Save persists the registry to disk.
func (r *ProjectRegistry) Save() error {
	r.mu.RLock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("error marshalling registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.RegistryPath), 0o750); err != nil {
		return fmt.Errorf("could not create registry directory: %w", err)
	}
	if err := os.WriteFile(r.RegistryPath, data, 0o640); err != nil {
		return fmt.Errorf("error writing registry file %s: %w", r.RegistryPath, err)
	}
	return nil
}

// RecordGeneration notes that the file at path was generated from templates.
func (r *ProjectRegistry) RecordGeneration(path string, templates []string, overridden bool) {
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.Projects[path]
	record.Path = path
	record.Templates = append([]string(nil), templates...)
	record.Overridden = overridden
	record.GenerateCount++
	record.LastGenerated = time.Now().Unix()
	r.Projects[path] = record

	r.GlobalUsages++
	r.LastUsedPath = path
}

// GetProject retrieves the record for a generated file.
func (r *ProjectRegistry) GetProject(path string) (GenerationRecord, bool) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, found := r.Projects[path]
	return record, found
}

// Recent returns all records, most recently generated first.
func (r *ProjectRegistry) Recent() []GenerationRecord {
	r.mu.RLock()
	records := make([]GenerationRecord, 0, len(r.Projects))
	for _, record := range r.Projects {
		records = append(records, record)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].LastGenerated != records[j].LastGenerated {
			return records[i].LastGenerated > records[j].LastGenerated
		}
		return records[i].Path < records[j].Path
	})
	return records
}
