package flatfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// DefaultWriteAttempts is how many times each of the two files is rewritten
// before a save gives up.
const DefaultWriteAttempts = 3

type fileSet struct {
	path     string
	attempts int
	backoff  time.Duration
	seen     stamp
}

// stamp identifies one version of the main file.
type stamp struct {
	mod  time.Time
	size int64
}

func (f *fileSet) current() (stamp, bool) {
	info, err := os.Stat(f.path)
	if err != nil {
		return stamp{}, false
	}
	return stamp{mod: info.ModTime(), size: info.Size()}, true
}

// stale reports whether another writer replaced the main file since it was
// last read or written here.
func (f *fileSet) stale() bool {
	st, ok := f.current()
	return ok && st != f.seen
}

func (f *fileSet) remember() {
	if st, ok := f.current(); ok {
		f.seen = st
	}
}

// readRecords loads path, or path+".tmp" when the main file cannot be opened.
// Neither file existing yields no records.
func (f *fileSet) readRecords() ([][]string, error) {
	recs, err := readCSV(f.path)
	if err == nil {
		f.remember()
		return recs, nil
	}
	slog.Warn("catalogue file unreadable, trying backup", "path", f.path, "error", err)
	recs, tmpErr := readCSV(f.path + ".tmp")
	if tmpErr == nil {
		return recs, nil
	}
	if errors.Is(err, fs.ErrNotExist) && errors.Is(tmpErr, fs.ErrNotExist) {
		return nil, nil
	}
	return nil, fmt.Errorf("read %s: %w", f.path, errors.Join(err, tmpErr))
}

// writeRecords writes the backup copy and then the main file, retrying each.
func (f *fileSet) writeRecords(ctx context.Context, recs [][]string) error {
	if err := f.writeWithRetry(ctx, f.path+".tmp", recs); err != nil {
		slog.Warn("backup write failed", "path", f.path+".tmp", "error", err)
	}
	if err := f.writeWithRetry(ctx, f.path, recs); err != nil {
		return err
	}
	f.remember()
	return nil
}

func (f *fileSet) writeWithRetry(ctx context.Context, path string, recs [][]string) error {
	attempts := f.attempts
	if attempts <= 0 {
		attempts = DefaultWriteAttempts
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 && f.backoff > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("write %s cancelled: %w", path, ctx.Err())
			case <-time.After(f.backoff):
			}
		}
		if lastErr = writeCSV(path, recs); lastErr == nil {
			return nil
		}
		slog.Warn("catalogue write failed", "path", path, "attempt", i+1, "error", lastErr)
	}
	return fmt.Errorf("write %s failed after %d attempts: %w", path, attempts, lastErr)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	var recs [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func writeCSV(path string, recs [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(file)
	if err := w.WriteAll(recs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
