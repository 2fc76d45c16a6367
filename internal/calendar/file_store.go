package calendar

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	holidaysFilePattern = "public_holidays_%d.txt"
	makeupFilePattern   = "makeup_workdays_%d.txt"
	tmpSuffix           = ".tmp"
	filePermissions     = 0o644
)

// Store persists classifications per year
type Store interface {
	Has(year int) bool
	Read(year int) (*Classification, error)
	Write(c *Classification) error
}

// FileStore keeps each year as two text files in one directory, one ISO
// date per line. Blank lines and lines starting with # are ignored so the
// files can be edited by hand.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a new FileStore rooted at dir
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

func (fs *FileStore) holidaysPath(year int) string {
	return filepath.Join(fs.dir, fmt.Sprintf(holidaysFilePattern, year))
}

func (fs *FileStore) makeupPath(year int) string {
	return filepath.Join(fs.dir, fmt.Sprintf(makeupFilePattern, year))
}

// Has reports whether both files of year exist
func (fs *FileStore) Has(year int) bool {
	for _, path := range []string{fs.holidaysPath(year), fs.makeupPath(year)} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// Read loads the classification of year
func (fs *FileStore) Read(year int) (*Classification, error) {
	c := NewClassification(year)

	if err := fs.readDates(fs.holidaysPath(year), c.Holidays); err != nil {
		return nil, err
	}
	if err := fs.readDates(fs.makeupPath(year), c.MakeupWorkdays); err != nil {
		return nil, err
	}

	fs.logger.Debug("Cache entry loaded",
		zap.Int("year", year),
		zap.Int("holidays", len(c.Holidays)),
		zap.Int("makeup_workdays", len(c.MakeupWorkdays)))

	return c, nil
}

func (fs *FileStore) readDates(path string, into DateSet) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s is missing", ErrCorruptEntry, path)
		}
		return fmt.Errorf("%w: failed to open %s: %v", ErrCorruptEntry, path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		date, err := dateutil.ParseDate(line)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", ErrCorruptEntry, path, lineNo, err)
		}
		into.Add(date)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: error reading %s: %v", ErrCorruptEntry, path, err)
	}

	return nil
}

// Write persists c, replacing any existing files of the same year
func (fs *FileStore) Write(c *Classification) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := writeDates(fs.holidaysPath(c.Year), c.Holidays); err != nil {
		return err
	}
	if err := writeDates(fs.makeupPath(c.Year), c.MakeupWorkdays); err != nil {
		return err
	}

	fs.logger.Info("Cache entry written",
		zap.Int("year", c.Year),
		zap.String("dir", fs.dir),
		zap.Int("holidays", len(c.Holidays)),
		zap.Int("makeup_workdays", len(c.MakeupWorkdays)))

	return nil
}

// writeDates writes through a temp file and renames it into place
func writeDates(path string, dates DateSet) error {
	var buf bytes.Buffer
	for _, d := range dates.Sorted() {
		buf.WriteString(d)
		buf.WriteByte('\n')
	}

	tmpFile := path + tmpSuffix
	if err := os.WriteFile(tmpFile, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to rename %s: %w", tmpFile, err)
	}

	return nil
}
