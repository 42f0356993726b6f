package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

var baseDateDirPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ResolveBaseDate picks the base date for a run: the pinned value when
// set, otherwise the newest YYYY-MM-DD directory under root, otherwise
// the configured fallback.
func ResolveBaseDate(root, pinned, fallback string) (string, error) {
	if pinned != "" {
		return pinned, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to scan report root %s: %w", root, err)
	}

	var dates []string
	for _, entry := range entries {
		if entry.IsDir() && baseDateDirPattern.MatchString(entry.Name()) {
			dates = append(dates, entry.Name())
		}
	}
	if len(dates) > 0 {
		sort.Strings(dates)
		return dates[len(dates)-1], nil
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no base-date directory found under %s and no default configured", root)
}

// LocateReports finds the candidate and outcome report files for a base
// date. The base-date directory is searched first, then the root, so a
// fresh report drop next to the binary is picked up before it has been
// filed away.
func LocateReports(root, baseDate, candidateGlob, outcomeGlob string) (candidatePath, outcomePath string, err error) {
	baseDir := filepath.Join(root, baseDate)

	candidatePath, err = locateOne(baseDir, root, candidateGlob, "candidate report")
	if err != nil {
		return "", "", err
	}
	outcomePath, err = locateOne(baseDir, root, outcomeGlob, "outcome report")
	if err != nil {
		return "", "", err
	}
	return candidatePath, outcomePath, nil
}

func locateOne(baseDir, root, glob, what string) (string, error) {
	for _, dir := range []string{baseDir, root} {
		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return "", fmt.Errorf("bad %s pattern %q: %w", what, glob, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
	}
	return "", fmt.Errorf("%s not found: no file matching %q under %s or %s", what, glob, baseDir, root)
}
