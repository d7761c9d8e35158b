package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"payledger/internal/payroll"
	"payledger/internal/repositories/records"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetNonNegativeFloat re-prompts until the user enters a number >= 0.
func GetNonNegativeFloat(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintln(w, "Please enter a valid number (e.g. 40 or 12.5).")
			continue
		}
		if v < 0 {
			fmt.Fprintln(w, "Value cannot be negative.")
			continue
		}
		return v, nil
	}
}

// GetTaxRate re-prompts until the user enters a tax rate in percent or
// decimal form (e.g. 20, 0.2, 20%), returning the normalized fraction.
func GetTaxRate(reader *bufio.Reader, w io.Writer) (float64, error) {
	for {
		s, err := GetSimpleText(reader, "Income tax rate (e.g. 20 or 0.2 or 20%)", w)
		if err != nil {
			return 0, err
		}
		v, err := payroll.ParseTaxRate(s)
		if err != nil {
			fmt.Fprintln(w, "Please enter a tax rate between 0 and 100% (percent or decimal).")
			continue
		}
		return v, nil
	}
}

// GetDate re-prompts until the user enters a date in mm/dd/yyyy form and
// returns it normalized.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		t, err := time.Parse(records.DateLayout, s)
		if err != nil {
			fmt.Fprintln(w, "Please enter dates in mm/dd/yyyy format. Try again.")
			continue
		}
		return t.Format(records.DateLayout), nil
	}
}
