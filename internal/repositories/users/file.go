package users

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"payledger/internal/models"
)

const fieldSep = "|"

// minFieldCount is the number of interpreted fields per account line;
// shorter lines are skipped, extra fields are ignored.
const minFieldCount = 3

// FileRepository implements Repository over a single append-only text file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a FileRepository bound to the given file path.
// The file is created on first append.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Append writes one id|password|role line to the backing file.
func (r *FileRepository) Append(ctx context.Context, acc *models.UserAccount) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open user file: %w", err)
	}
	defer f.Close()

	line := strings.Join([]string{acc.ID, acc.Password, string(acc.Role)}, fieldSep)
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}

// LoadAll parses every well-formed account line, in file order.
// A missing file yields an empty result.
func (r *FileRepository) LoadAll(ctx context.Context) ([]models.UserAccount, error) {
	var result []models.UserAccount

	err := r.scanLines(func(fields []string) {
		result = append(result, models.UserAccount{
			ID:       fields[0],
			Password: fields[1],
			Role:     models.Role(fields[2]),
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadIDs collects the ids of all well-formed account lines.
func (r *FileRepository) LoadIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	err := r.scanLines(func(fields []string) {
		ids[fields[0]] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// scanLines feeds the fields of every line with at least minFieldCount
// fields to fn. A missing file is treated as an empty store.
func (r *FileRepository) scanLines(fn func(fields []string)) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open user file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		fields := strings.Split(raw, fieldSep)
		if len(fields) < minFieldCount {
			continue
		}
		fn(fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read user file: %w", err)
	}
	return nil
}
