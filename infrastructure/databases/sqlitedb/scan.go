package sqlitedb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// Timestamp returns a scanner that fills dst from a TIMESTAMP column. The
// driver only converts values when it can see the declared column type,
// which RETURNING clauses hide, so text values are parsed here as well.
func Timestamp(dst *time.Time) sql.Scanner {
	return timeScanner{dst: dst}
}

// Date returns a scanner that fills dst from a YYYY-MM-DD text column.
func Date(dst *time.Time) sql.Scanner {
	return timeScanner{dst: dst, dateOnly: true}
}

type timeScanner struct {
	dst      *time.Time
	dateOnly bool
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = time.Time{}
		return nil
	case time.Time:
		*s.dst = s.normalise(v)
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	}
	return fmt.Errorf("sqlitedb: cannot scan %T into time", src)
}

func (s timeScanner) parse(v string) error {
	v = strings.TrimSuffix(v, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.dst = s.normalise(t)
			return nil
		}
	}
	return fmt.Errorf("sqlitedb: cannot parse time %q", v)
}

func (s timeScanner) normalise(t time.Time) time.Time {
	if !s.dateOnly {
		return t.UTC()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
