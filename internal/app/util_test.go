package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xxxsen/namesplit/internal/nameparse"

	"github.com/stretchr/testify/assert"
)

func TestParseS3Path(t *testing.T) {
	t.Parallel()

	bucket, key, err := parseS3Path("s3://names/raw/list.txt")
	if err != nil {
		t.Fatalf("parse s3 path: %v", err)
	}
	assert.Equal(t, "names", bucket)
	assert.Equal(t, "raw/list.txt", key)

	for _, bad := range []string{"", "names/list.txt", "s3://", "s3://bucket", "s3://bucket/"} {
		if _, _, err := parseS3Path(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestReadNameFileText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")
	content := "Smith, John\n\n# comment line\n  Jane Doe  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	names, err := readNameFile(path, 0)
	if err != nil {
		t.Fatalf("read name file: %v", err)
	}
	assert.Equal(t, []string{"Smith, John", "Jane Doe"}, names)
}

func TestReadNameFileCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.csv")
	content := "1,Smith JR. John,extra\n2,\"de la Cruz, Maria\"\n3,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	names, err := readNameFile(path, 1)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	assert.Equal(t, []string{"Smith JR. John", "de la Cruz, Maria"}, names)
}

func TestSortKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "smith john", sortKey(&nameparse.Name{FirstName: "John", LastName: "Smith"}))
	assert.Equal(t, "zhang wei", sortKey(&nameparse.Name{FirstName: "伟", LastName: "张"}))
	assert.Equal(t, "madonna", sortKey(&nameparse.Name{FirstName: "Madonna"}))
	assert.Equal(t, "", sortKey(&nameparse.Name{}))
}
