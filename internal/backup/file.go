package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const filePrefix = "backup-"

// Write serializes a snapshot to a timestamped, pretty-printed JSON file
// under dir, creating the directory if absent. An existing file is never
// overwritten; a counter suffix is appended instead.
func Write(snap *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	stamp := snap.Timestamp.Format("20060102-150405")
	name := fmt.Sprintf("%s%s.json", filePrefix, stamp)
	path := filepath.Join(dir, name)
	for counter := 1; ; counter++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			defer f.Close()
			if _, err := f.Write(data); err != nil {
				return "", fmt.Errorf("failed to write backup file: %w", err)
			}
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to create backup file: %w", err)
		}
		name = fmt.Sprintf("%s%s-%d.json", filePrefix, stamp, counter)
		path = filepath.Join(dir, name)
	}
}

// Latest returns the newest backup file under dir, chosen by reverse
// lexical sort of the timestamped names
func Latest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no backup files found in %s", dir)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return filepath.Join(dir, names[0]), nil
}
