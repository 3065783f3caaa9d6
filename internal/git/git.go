// Package git narrows an analysis to files touched since a base revision,
// using plain git diff output.
package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ChangedPythonFiles runs git diff against baseRef and returns the paths of
// modified .py files (new side of the diff). Deleted files are excluded; there
// is nothing left to analyze in them.
func ChangedPythonFiles(baseRef string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-status", baseRef)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}
	return parseNameStatus(output), nil
}

func parseNameStatus(output []byte) []string {
	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		status := fields[0]
		// For renames/copies (R100 old new) the new path is the last field.
		path := fields[len(fields)-1]

		if strings.HasPrefix(status, "D") {
			continue
		}
		if !strings.HasSuffix(path, ".py") {
			continue
		}
		paths = append(paths, path)
	}

	return paths
}
