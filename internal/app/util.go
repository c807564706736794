package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xxxsen/namesplit/internal/nameparse"
	"github.com/xxxsen/namesplit/internal/translit"
)

func s3Path(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

func parseS3Path(path string) (string, string, error) {
	if path == "" {
		return "", "", fmt.Errorf("empty s3 path")
	}
	if !strings.HasPrefix(path, "s3://") {
		return "", "", fmt.Errorf("invalid s3 path %s", path)
	}
	trimmed := strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 path %s", path)
	}
	return parts[0], parts[1], nil
}

// readNameFile loads one raw name per line from a plain text file, or one per
// row from the given column of a csv file. Blank lines and '#' comments are
// skipped in text mode.
func readNameFile(path string, column int) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSVNames(path, column)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name file %s: %w", path, err)
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

func readCSVNames(path string, column int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}

	var names []string
	for _, row := range records {
		if column >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[column])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// sortKey derives a lowercase "last first" collation key, with Han characters
// romanized so the whole list sorts on one alphabet.
func sortKey(name *nameparse.Name) string {
	parts := make([]string, 0, 2)
	if name.LastName != "" {
		parts = append(parts, name.LastName)
	}
	if name.FirstName != "" {
		parts = append(parts, name.FirstName)
	}
	return strings.ToLower(translit.Romanize(strings.Join(parts, " ")))
}
