//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleLogName = "meeting_sample.txt"

const sampleLog = `=== Meeting Summary ===
Date: 2025-02-08
Attendees: Alice, Bob
Location: Conference Room B

=== Questions and Responses ===
Q1: What is the project status?
A1: On track for Q2 release.
Q2: Any blockers?
A2: None currently.
`

// Sample writes an example meeting log into meeting_logs/.
func Sample() error {
	mg.Deps(Init)
	path := filepath.Join("meeting_logs", sampleLogName)
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Println("Wrote", path)
	return nil
}

// Preview renders the sample log into reports/ for viewing in a browser.
func Preview() error {
	mg.Deps(Build, Sample)
	out := filepath.Join("reports", "meeting_sample.html")
	return sh.RunV(filepath.Join(binDir, binName), "render", sampleLogName, "--out", out)
}
