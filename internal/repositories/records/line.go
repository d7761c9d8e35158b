package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"payledger/internal/models"
)

// DateLayout is the textual date form used on disk and for report filters.
const DateLayout = "01/02/2006"

const fieldSep = "|"

const (
	v1FieldCount = 6
	v2FieldCount = 7
)

// ErrMalformedLine marks lines that cannot be parsed into a record.
// Loaders skip such lines instead of failing the whole read.
var ErrMalformedLine = errors.New("malformed record line")

// Version tags the on-disk schema a line was parsed from.
type Version int

const (
	// V1 is the legacy 6-field shape without an id.
	V1 Version = iota + 1
	// V2 is the 7-field shape with a leading id; extra fields are ignored.
	V2
)

// Line is the tagged result of parsing one raw record line. Downstream code
// branches on Version instead of re-inspecting field counts.
type Line struct {
	Version Version
	Record  models.EmployeeRecord
}

// splitRecordLine classifies a raw line by field count and returns exactly
// the interpreted fields: 6 for v1, the first 7 for v2.
func splitRecordLine(raw string) ([]string, Version, error) {
	fields := strings.Split(raw, fieldSep)
	switch {
	case len(fields) == v1FieldCount:
		return fields, V1, nil
	case len(fields) >= v2FieldCount:
		return fields[:v2FieldCount], V2, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d fields", ErrMalformedLine, len(fields))
	}
}

// ParseLine parses one raw line into a tagged Line. Wrong field counts and
// non-numeric hours/rate/taxRate fields yield an error wrapping
// ErrMalformedLine.
func ParseLine(raw string) (*Line, error) {
	fields, version, err := splitRecordLine(raw)
	if err != nil {
		return nil, err
	}

	rec := models.EmployeeRecord{}
	if version == V2 {
		rec.ID = fields[0]
		fields = fields[1:]
	}
	rec.FromDate = fields[0]
	rec.ToDate = fields[1]
	rec.Name = fields[2]

	if rec.Hours, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return nil, fmt.Errorf("%w: hours: %s", ErrMalformedLine, fields[3])
	}
	if rec.Rate, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return nil, fmt.Errorf("%w: rate: %s", ErrMalformedLine, fields[4])
	}
	if rec.TaxRate, err = strconv.ParseFloat(fields[5], 64); err != nil {
		return nil, fmt.Errorf("%w: tax rate: %s", ErrMalformedLine, fields[5])
	}

	return &Line{Version: version, Record: rec}, nil
}

// ScanID returns the leading id of a v2-shaped line. The second result is
// false for v1 lines and lines too short to classify. Numeric fields are not
// inspected here: id collection stays available even for lines whose numbers
// would not parse.
func ScanID(raw string) (string, bool) {
	fields, version, err := splitRecordLine(raw)
	if err != nil || version != V2 {
		return "", false
	}
	return fields[0], true
}

// NormalizeDate reformats s to the canonical mm/dd/yyyy form. If s does not
// parse, it is returned unchanged; the store treats that as a raw passthrough
// rather than an error.
func NormalizeDate(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}

// formatLine serializes a record for appending. Dates are normalized before
// writing; numbers use the shortest decimal form that round-trips.
func formatLine(rec *models.EmployeeRecord) string {
	fields := []string{
		NormalizeDate(rec.FromDate),
		NormalizeDate(rec.ToDate),
		rec.Name,
		strconv.FormatFloat(rec.Hours, 'g', -1, 64),
		strconv.FormatFloat(rec.Rate, 'g', -1, 64),
		strconv.FormatFloat(rec.TaxRate, 'g', -1, 64),
	}
	if rec.ID != "" {
		fields = append([]string{rec.ID}, fields...)
	}
	return strings.Join(fields, fieldSep)
}
