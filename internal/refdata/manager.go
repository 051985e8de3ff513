// Package refdata loads the obliquity reference table from its configured
// source and holds it for the lifetime of the process.
package refdata

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"obliquity.pulsartiming.org/internal/logging"
	"obliquity.pulsartiming.org/internal/obliquity"
)

// BuiltinSource is the source name reported when the embedded table is used.
const BuiltinSource = "builtin"

// Manager holds the obliquity table and provides methods to access it.
// The table is loaded exactly once; after InitManager returns, the manager
// is read-only and safe for concurrent use.
type Manager struct {
	source      string
	isLocalFile bool
	table       *obliquity.Table
	lastUpdated time.Time
	config      Config
	logger      *slog.Logger
}

// InitManager loads the obliquity table from the configured source.
// A load or parse failure is fatal to the caller: no manager is returned
// and no partial table is ever exposed.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	if config.ObliquityURL == "" {
		return &Manager{
			source:      BuiltinSource,
			table:       obliquity.Builtin,
			lastUpdated: time.Now(),
			config:      config,
			logger:      logger,
		}, nil
	}

	isLocalFile := !strings.HasPrefix(config.ObliquityURL, "http://") && !strings.HasPrefix(config.ObliquityURL, "https://")

	b, err := rawTableData(config.ObliquityURL, isLocalFile, logger)
	if err != nil {
		return nil, err
	}

	table, err := obliquity.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing obliquity table from %s: %w", config.ObliquityURL, err)
	}

	return &Manager{
		source:      config.ObliquityURL,
		isLocalFile: isLocalFile,
		table:       table,
		lastUpdated: time.Now(),
		config:      config,
		logger:      logger,
	}, nil
}

// rawTableData reads the table text from either a local file or a URL.
func rawTableData(source string, isLocalFile bool, logger *slog.Logger) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local obliquity table: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading obliquity table: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, logger, "obliquity_table_download")

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading obliquity table: unexpected status %s", resp.Status)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading obliquity table response: %w", err)
		}
	}
	return b, nil
}

// Table returns the loaded obliquity table.
func (manager *Manager) Table() *obliquity.Table {
	return manager.table
}

// Lookup returns the value for the given convention label, falling back to
// the DEFAULT entry when the label is empty.
func (manager *Manager) Lookup(label string) (float64, error) {
	return manager.table.Lookup(label)
}

// Source returns where the table was loaded from.
func (manager *Manager) Source() string {
	return manager.source
}

// LastUpdated returns when the table was loaded.
func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

// LogStatistics emits a structured summary of the loaded table.
func (manager *Manager) LogStatistics() {
	logging.LogOperation(manager.logger, "obliquity_table_loaded",
		slog.String("source", manager.source),
		slog.Bool("local_file", manager.isLocalFile),
		slog.Int("entries", manager.table.Len()),
		slog.Float64("default_arcsec", manager.table.Default()),
		slog.Time("last_updated", manager.lastUpdated))
}
