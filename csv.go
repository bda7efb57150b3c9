package gkverb

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// BatchEntry is one row of a batch input file: a tagged stem plus the
// codes requested for it. An empty Codes list means the tense family's
// default codes.
type BatchEntry struct {
	Stem  string
	Codes []Code
}

// ReadBatch parses batch input: one record per verb, field 1 the tagged
// stem, any further fields TVM codes. Records may have varying field
// counts. Blank records and records with a blank first field are skipped.
func ReadBatch(r io.Reader) ([]BatchEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var entries []BatchEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading batch input")
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		entry := BatchEntry{Stem: strings.TrimSpace(record[0])}
		for _, field := range record[1:] {
			field = strings.TrimSpace(field)
			if field != "" {
				entry.Codes = append(entry.Codes, Code(field))
			}
		}
		entries = append(entries, entry)
	}
}

// ReadBatchFile reads batch input from path.
func ReadBatchFile(path string) ([]BatchEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening batch input %s", path)
	}
	defer f.Close()
	return ReadBatch(f)
}

// FormsWriter writes conjugation results as CSV: one record per computed
// code, exactly the six forms, no header. Codes without a result produce
// no record. Any write error is terminal for the run; there is no retry
// and no partially written file is guaranteed consistent.
type FormsWriter struct {
	w *csv.Writer
}

// NewFormsWriter wraps w.
func NewFormsWriter(w io.Writer) *FormsWriter {
	return &FormsWriter{w: csv.NewWriter(w)}
}

// WriteVerb writes one record per code in codes that has forms on v,
// in the given order.
func (fw *FormsWriter) WriteVerb(v *Verb, codes []Code) error {
	for _, code := range codes {
		forms, ok := v.Forms(code)
		if !ok {
			continue
		}
		if err := fw.w.Write(forms); err != nil {
			return errors.Wrapf(err, "writing forms for %s", code)
		}
	}
	return nil
}

// Flush flushes buffered records and reports any deferred write error.
func (fw *FormsWriter) Flush() error {
	fw.w.Flush()
	return errors.Wrap(fw.w.Error(), "flushing forms output")
}

// WriteFormsFile creates path and writes one verb's results to it.
func WriteFormsFile(path string, v *Verb, codes []Code) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating output %s", path)
	}
	fw := NewFormsWriter(f)
	if err := fw.WriteVerb(v, codes); err != nil {
		f.Close()
		return err
	}
	if err := fw.Flush(); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing output %s", path)
}
