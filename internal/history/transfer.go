package history

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
)

// maxLineSize bounds one exported JSON line
const maxLineSize = 4 << 20

// ImportStats reports the outcome of Import
type ImportStats struct {
	Imported int
	Skipped  int // ids already present
}

// Export writes every entry, oldest first, as one JSON object per line
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	s.mu.RLock()
	entries, err := s.query(ctx, "history.Export",
		`SELECT id, created_at, source, digest, variables, row_count, true_rows FROM history ORDER BY created_at ASC, rowid ASC`)
	s.mu.RUnlock()
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			return 0, mdwerror.Wrap(err, "failed to write history export").WithOperation("history.Export")
		}
	}

	s.logger.Info("History exported", mdwlog.Fields{"entries": len(entries)})
	return len(entries), nil
}

// Import reads JSON lines written by Export. Entries whose id already exists
// are skipped; a missing digest is recomputed from the source.
func (s *Store) Import(ctx context.Context, r io.Reader) (ImportStats, error) {
	var stats ImportStats

	var p fastjson.Parser
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := p.Parse(text)
		if err != nil {
			return stats, importError(err, "invalid json", line)
		}
		entry, err := entryFromJSON(v)
		if err != nil {
			return stats, importError(err, "invalid history entry", line)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return stats, mdwerror.Wrap(err, "failed to read history import").WithOperation("history.Import")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, dbError(err, "failed to begin transaction", "history.Import")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO history (id, created_at, source, digest, variables, row_count, true_rows)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return stats, dbError(err, "failed to prepare statement", "history.Import")
	}
	defer stmt.Close()

	for _, e := range entries {
		result, err := stmt.ExecContext(ctx, e.ID, e.CreatedAt, e.Source, e.Digest, e.Variables, e.Rows, e.TrueRows)
		if err != nil {
			return ImportStats{}, dbError(err, "failed to import history entry", "history.Import").WithDetail("id", e.ID)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			stats.Skipped++
		} else {
			stats.Imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, dbError(err, "failed to commit transaction", "history.Import")
	}

	s.logger.Info("History imported", mdwlog.Fields{"imported": stats.Imported, "skipped": stats.Skipped})
	return stats, nil
}

func entryFromJSON(v *fastjson.Value) (Entry, error) {
	e := Entry{
		ID:        string(v.GetStringBytes("id")),
		Source:    string(v.GetStringBytes("source")),
		Digest:    string(v.GetStringBytes("digest")),
		Variables: string(v.GetStringBytes("variables")),
		Rows:      v.GetInt("rows"),
		TrueRows:  v.GetInt("true_rows"),
	}
	if e.ID == "" {
		return e, mdwerror.New("missing id").WithCode(mdwerror.CodeInvalidInput)
	}
	if e.Source == "" {
		return e, mdwerror.New("missing source").WithCode(mdwerror.CodeInvalidInput).WithDetail("id", e.ID)
	}

	created := string(v.GetStringBytes("created_at"))
	if created == "" {
		e.CreatedAt = time.Now().UTC()
	} else {
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return e, mdwerror.Wrap(err, "invalid created_at").WithCode(mdwerror.CodeInvalidInput).WithDetail("id", e.ID)
		}
		e.CreatedAt = t.UTC()
	}

	if e.Digest == "" {
		digest, err := digestSource(e.Source)
		if err != nil {
			return e, mdwerror.Wrap(err, "source is not a valid expression").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("id", e.ID)
		}
		e.Digest = digest
	}
	return e, nil
}

func importError(err error, msg string, line int) error {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		code = mdwerror.CodeInvalidInput
	}
	return mdwerror.Wrap(err, msg).
		WithCode(code).
		WithDetail("line", line).
		WithOperation("history.Import")
}

// compressed reports whether a path names a zstd file
func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

type exportFile struct {
	io.Writer
	enc  *zstd.Encoder
	file *os.File
}

func (f *exportFile) Close() error {
	if f.enc != nil {
		if err := f.enc.Close(); err != nil {
			f.file.Close()
			return err
		}
	}
	return f.file.Close()
}

// OpenExport creates path for Export, zstd compressed when it ends in .zst
func OpenExport(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create export file").
			WithDetail("path", path).
			WithOperation("history.OpenExport")
	}
	if !compressed(path) {
		return &exportFile{Writer: file, file: file}, nil
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return nil, mdwerror.Wrap(err, "failed to create zstd encoder").WithOperation("history.OpenExport")
	}
	return &exportFile{Writer: enc, enc: enc, file: file}, nil
}

type importFile struct {
	io.Reader
	dec  *zstd.Decoder
	file *os.File
}

func (f *importFile) Close() error {
	if f.dec != nil {
		f.dec.Close()
	}
	return f.file.Close()
}

// OpenImport opens path for Import, decompressing .zst files
func OpenImport(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		code := mdwerror.CodeInternal
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to open import file").
			WithCode(code).
			WithDetail("path", path).
			WithOperation("history.OpenImport")
	}
	if !compressed(path) {
		return &importFile{Reader: file, file: file}, nil
	}

	dec, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, mdwerror.Wrap(err, "failed to create zstd decoder").WithOperation("history.OpenImport")
	}
	return &importFile{Reader: dec, dec: dec, file: file}, nil
}
