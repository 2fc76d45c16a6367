package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "HolidayData")
	fs := NewFileStore(dir, zap.NewNop())

	if fs.Has(2024) {
		t.Fatal("Has() = true before any write")
	}

	c := NewClassification(2024)
	c.Holidays.Add(date(t, "2024-10-01"))
	c.Holidays.Add(date(t, "2024-01-01"))
	c.MakeupWorkdays.Add(date(t, "2024-09-29"))

	if err := fs.Write(c); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	// Writing again is harmless
	if err := fs.Write(c); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	if !fs.Has(2024) {
		t.Fatal("Has() = false after write")
	}

	got, err := fs.Read(2024)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Year != 2024 {
		t.Errorf("Year = %d, want 2024", got.Year)
	}
	assertDates(t, got.Holidays, "2024-01-01", "2024-10-01")
	assertDates(t, got.MakeupWorkdays, "2024-09-29")
	if len(got.Holidays) != 2 || len(got.MakeupWorkdays) != 1 {
		t.Errorf("unexpected sizes: %v %v", got.Holidays.Sorted(), got.MakeupWorkdays.Sorted())
	}

	raw, err := os.ReadFile(filepath.Join(dir, "public_holidays_2024.txt"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(raw) != "2024-01-01\n2024-10-01\n" {
		t.Errorf("holidays file = %q", raw)
	}

	if _, err := os.Stat(filepath.Join(dir, "public_holidays_2024.txt"+tmpSuffix)); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestFileStore_EmptyYear(t *testing.T) {
	fs := NewFileStore(t.TempDir(), zap.NewNop())

	if err := fs.Write(NewClassification(2010)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !fs.Has(2010) {
		t.Fatal("empty year should still be stored")
	}

	got, err := fs.Read(2010)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("Read() = %+v, want empty", got)
	}
}

func TestFileStore_HandEditedFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, zap.NewNop())

	holidays := "# National Day\n2024-10-01\n\n  2024-10-02  \n"
	if err := os.WriteFile(filepath.Join(dir, "public_holidays_2024.txt"), []byte(holidays), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "makeup_workdays_2024.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fs.Read(2024)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	assertDates(t, got.Holidays, "2024-10-01", "2024-10-02")
}

func TestFileStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, zap.NewNop())

	if err := os.WriteFile(filepath.Join(dir, "public_holidays_2024.txt"), []byte("2024-10-01\n10/02/2024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "makeup_workdays_2024.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := fs.Read(2024)
	if !errors.Is(err, ErrCorruptEntry) {
		t.Errorf("Read() error = %v, want ErrCorruptEntry", err)
	}
}

func TestFileStore_HasNeedsBothFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, zap.NewNop())

	if err := os.WriteFile(filepath.Join(dir, "public_holidays_2024.txt"), []byte("2024-10-01\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if fs.Has(2024) {
		t.Error("Has() = true with only one file present")
	}
	if _, err := fs.Read(2024); !errors.Is(err, ErrCorruptEntry) {
		t.Errorf("Read() error = %v, want ErrCorruptEntry", err)
	}
}
