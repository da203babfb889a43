package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// rotate keeps at most keep log files in dir, removing the oldest first.
// Only files named "kioskboard_*.log" are considered.
func rotate(dir string, keep int) error {
	if keep < 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		path    string
		modNano int64
	}
	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		lf := logFile{path: filepath.Join(dir, name)}
		if info, err := entry.Info(); err == nil {
			lf.modNano = info.ModTime().UnixNano()
		}
		files = append(files, lf)
	}
	if len(files) <= keep {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].modNano == files[j].modNano {
			return files[i].path < files[j].path
		}
		return files[i].modNano < files[j].modNano
	})
	for _, f := range files[:len(files)-keep] {
		os.Remove(f.path) // ignore errors
	}
	return nil
}
