package records

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"payledger/internal/models"
)

// FileRepository implements Repository over a single append-only text file.
// The repository owns its backing file exclusively; there is no locking, and
// concurrent external mutation during a session is undefined behavior.
type FileRepository struct {
	path string
}

// NewFileRepository returns a FileRepository bound to the given file path.
// The file is created on first append.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Append serializes rec as a single pipe-delimited line and appends it to the
// backing file. Dates are normalized to mm/dd/yyyy where they parse; a v2
// line is written when rec.ID is set, a v1 line otherwise.
func (r *FileRepository) Append(ctx context.Context, rec *models.EmployeeRecord) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(rec) + "\n"); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// LoadIDs scans the file and collects the leading id of every v2 line.
// v1 lines contribute no id; this is intentional for backward compatibility.
// A missing file yields an empty set.
func (r *FileRepository) LoadIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	err := r.scanLines(func(raw string) {
		if id, ok := ScanID(raw); ok {
			ids[id] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// LoadAll parses every line into a record, in file order. If fromDate is
// non-empty, only records whose FromDate textually equals it are returned;
// the comparison is string equality on the normalized mm/dd/yyyy form, not
// calendar equality. Malformed lines are skipped. A missing file yields an
// empty result.
func (r *FileRepository) LoadAll(ctx context.Context, fromDate string) ([]models.EmployeeRecord, error) {
	var result []models.EmployeeRecord

	err := r.scanLines(func(raw string) {
		line, err := ParseLine(raw)
		if err != nil {
			return
		}
		if fromDate != "" && line.Record.FromDate != fromDate {
			return
		}
		result = append(result, line.Record)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scanLines feeds every non-empty, trimmed line of the backing file to fn.
// A missing file is treated as an empty store.
func (r *FileRepository) scanLines(fn func(raw string)) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		fn(raw)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read record file: %w", err)
	}
	return nil
}
