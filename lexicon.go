package gkverb

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
)

// persons and numbers label the six slots of a Conjugated in order.
var (
	persons = [NumForms]int{1, 2, 3, 1, 2, 3}
	numbers = [NumForms]string{"sg", "sg", "sg", "pl", "pl", "pl"}
)

// FormRow is one stored surface form.
type FormRow struct {
	Stem   string
	Code   Code
	Person int
	Number string
	Form   string
}

// Lexicon is a sqlite store of computed forms. Alongside each form it
// keeps a diacritic-free search key so lookups work without typing
// breathings and accents.
type Lexicon struct {
	db *sql.DB
}

const lexiconSchema = `
CREATE TABLE IF NOT EXISTS forms (
	stem   TEXT NOT NULL,
	code   TEXT NOT NULL,
	person INTEGER NOT NULL,
	number TEXT NOT NULL,
	form   TEXT NOT NULL,
	bare   TEXT NOT NULL,
	UNIQUE(stem, code, person, number)
);
CREATE INDEX IF NOT EXISTS idx_forms_bare ON forms(bare);
`

// OpenLexicon opens (creating if needed) a lexicon database at path.
func OpenLexicon(path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening lexicon %s", path)
	}
	if _, err := db.Exec(lexiconSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing lexicon schema")
	}
	return &Lexicon{db: db}, nil
}

// Close closes the underlying database.
func (x *Lexicon) Close() error {
	return x.db.Close()
}

// SaveVerb stores the computed forms of v for the given codes. Codes
// without a result store nothing. Re-saving the same (stem, code) pair
// is a no-op: slots never change once filled, so neither do rows.
func (x *Lexicon) SaveVerb(v *Verb, codes []Code) error {
	tx, err := x.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning lexicon transaction")
	}
	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO forms (stem, code, person, number, form, bare) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "preparing lexicon insert")
	}
	defer stmt.Close()

	for _, code := range codes {
		forms, ok := v.Forms(code)
		if !ok {
			continue
		}
		for i, form := range forms {
			if _, err := stmt.Exec(v.Stem.Text, string(code), persons[i], numbers[i], form, Bare(form)); err != nil {
				tx.Rollback()
				return errors.Wrapf(err, "storing %s form %s", code, form)
			}
		}
	}
	return errors.Wrap(tx.Commit(), "committing lexicon transaction")
}

// LookupBare returns all stored forms whose diacritic-free key matches
// form (itself stripped before comparison), ordered by stem, code and
// slot.
func (x *Lexicon) LookupBare(form string) ([]FormRow, error) {
	rows, err := x.db.Query(
		`SELECT stem, code, person, number, form FROM forms WHERE bare = ? ORDER BY stem, code, number DESC, person`,
		Bare(form))
	if err != nil {
		return nil, errors.Wrap(err, "querying lexicon")
	}
	defer rows.Close()

	var out []FormRow
	for rows.Next() {
		var r FormRow
		var code string
		if err := rows.Scan(&r.Stem, &code, &r.Person, &r.Number, &r.Form); err != nil {
			return nil, errors.Wrap(err, "scanning lexicon row")
		}
		r.Code = Code(code)
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "iterating lexicon rows")
}

// Count returns the number of stored forms.
func (x *Lexicon) Count() (int, error) {
	var n int
	if err := x.db.QueryRow(`SELECT COUNT(*) FROM forms`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting lexicon forms")
	}
	return n, nil
}
