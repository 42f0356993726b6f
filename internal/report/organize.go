package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OrganizeRun files a finished run away: the base-date directory is
// created if needed, report files still sitting at the root are copied
// in, the output file is moved in, and stale .txt outputs from earlier
// format revisions are removed. Returns the final output path.
func OrganizeRun(root, baseDate, outputPath string, reportPaths ...string) (string, error) {
	baseDir := filepath.Join(root, baseDate)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create base-date directory %s: %w", baseDir, err)
	}

	for _, p := range reportPaths {
		if p == "" || strings.HasPrefix(p, baseDir+string(os.PathSeparator)) {
			continue
		}
		dst := filepath.Join(baseDir, filepath.Base(p))
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		if err := copyFile(p, dst); err != nil {
			return "", fmt.Errorf("failed to file report %s: %w", p, err)
		}
	}

	finalPath := outputPath
	if !strings.HasPrefix(outputPath, baseDir+string(os.PathSeparator)) {
		finalPath = filepath.Join(baseDir, filepath.Base(outputPath))
		if err := os.Remove(finalPath); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to replace existing output %s: %w", finalPath, err)
		}
		if err := copyFile(outputPath, finalPath); err != nil {
			return "", fmt.Errorf("failed to file output %s: %w", outputPath, err)
		}
		if err := os.Remove(outputPath); err != nil {
			return "", fmt.Errorf("failed to remove staged output %s: %w", outputPath, err)
		}
	}

	stale := "output_" + baseDate + ".txt"
	for _, p := range []string{filepath.Join(root, stale), filepath.Join(baseDir, stale)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to remove stale output %s: %w", p, err)
		}
	}

	return finalPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
