// Package cleaner normalizes batches of JSON record files from a source
// directory into a cumulative in-memory buffer.
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/jsonscrub/internal/ingest"
	"github.com/rshade/jsonscrub/internal/logging"
)

// DefaultFileLimit bounds the number of files considered per Process call
// when the caller does not specify a limit.
const DefaultFileLimit = 10

// StatusProcessed is stamped onto every cleaned record.
const StatusProcessed = "processed"

// UnknownName is substituted when a record carries no usable name field.
const UnknownName = "Unknown"

// ErrSourceDir indicates the cleaner was constructed against a path that is
// not an existing directory.
var ErrSourceDir = errors.New("source directory not found")

// titler implements the word-by-word title casing applied to names.
// cases.Caser is not safe for concurrent use, but the cleaner is
// single-threaded throughout.
var titler = cases.Title(language.English)

// Cleaner scans a source directory for .json files and accumulates cleaned
// records across calls. The buffer is append-only for the lifetime of the
// instance; it is never reset between Process calls.
type Cleaner struct {
	sourceDir string
	processed []ingest.Record
}

// New validates that sourceDir is an existing directory and returns a
// Cleaner bound to it. The directory is validated once, here; later external
// deletion surfaces as an empty enumeration rather than an error.
func New(sourceDir string) (*Cleaner, error) {
	info, err := os.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceDir, sourceDir)
	}
	return &Cleaner{sourceDir: sourceDir}, nil
}

// SourceDir returns the directory this cleaner was constructed against.
func (c *Cleaner) SourceDir() string { return c.sourceDir }

// Process considers up to fileLimit .json files from the source directory in
// directory-listing order, cleans every record loaded from them, and returns
// the full accumulated buffer.
//
// The limit bounds files considered, not files successfully loaded: a file
// that fails to load still counts against it. Load failures contribute zero
// records and never abort the pass.
//
// The returned buffer is cumulative across calls on the same instance, so
// calling Process twice over an unchanged directory double-counts its
// records. Callers wanting one pass call it once. Listing order is whatever
// the filesystem yields; callers needing determinism must sort the result
// themselves.
func (c *Cleaner) Process(ctx context.Context, fileLimit int) []ingest.Record {
	log := logging.ComponentLogger(logging.FromContext(ctx), "cleaner")
	runID := logging.NewRunID()

	considered := 0
	loaded := 0
	appended := 0

	entries, err := os.ReadDir(c.sourceDir)
	if err != nil {
		// Directory vanished after construction. Treated as an empty
		// enumeration, matching the one-time-validation contract.
		log.Warn().
			Str("run_id", runID).
			Str("source_dir", c.sourceDir).
			Err(err).
			Msg("could not enumerate source directory")
		return c.processed
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if considered >= fileLimit {
			log.Info().
				Str("run_id", runID).
				Int("file_limit", fileLimit).
				Msg("reached file limit")
			break
		}
		considered++

		path := filepath.Join(c.sourceDir, entry.Name())
		records, loadErr := ingest.Load(ctx, path)
		if loadErr != nil {
			// Already reported by the loader; a failed file is
			// indistinguishable from an empty one past this point.
			continue
		}
		loaded++

		for _, record := range records {
			c.processed = append(c.processed, cleanRecord(record))
			appended++
		}
	}

	log.Info().
		Str("run_id", runID).
		Int("files_considered", considered).
		Int("files_loaded", loaded).
		Int("records_appended", appended).
		Int("records_total", len(c.processed)).
		Msg("processing pass complete")

	return c.processed
}

// cleanRecord builds the normalized form of record without mutating the
// input map, so callers holding a reference to the raw record see no
// surprise writes.
func cleanRecord(record ingest.Record) ingest.Record {
	cleaned := make(ingest.Record, len(record)+1)
	for k, v := range record {
		cleaned[k] = v
	}

	name := UnknownName
	if raw, ok := record["name"].(string); ok {
		name = raw
	}
	cleaned["name"] = titler.String(strings.TrimSpace(name))
	cleaned["status"] = StatusProcessed

	return cleaned
}
