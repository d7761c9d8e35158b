package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAdmin() bool
	AddRecord(ctx context.Context) error
	AddUser(ctx context.Context) error
	Report(ctx context.Context) error
	ListUsers(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the payledger CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help       — show available commands
//	add        — enter pay records (admin only)
//	adduser    — create user accounts (admin only)
//	report     — run a payroll report
//	users      — list user accounts
//	exit|quit  — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pl> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn("Available commands: add, adduser, report, users, exit")
			} else {
				printlnFn("Available commands: report, users, exit")
			}

		case "add":
			if !a.isAdmin() {
				printlnFn("View-only access: entering records requires Admin authorization.")
				continue
			}
			_ = a.AddRecord(ctx)

		case "adduser":
			if !a.isAdmin() {
				printlnFn("View-only access: creating accounts requires Admin authorization.")
				continue
			}
			_ = a.AddUser(ctx)

		case "report":
			_ = a.Report(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
