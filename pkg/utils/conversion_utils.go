package utils

import (
	"database/sql"
	"time"
)

// NullTimePtr converts a sql.NullTime scanned from the database into a
// *time.Time for the JSON model.
func NullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// NullStringPtr converts a sql.NullString into a *string.
func NullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// TimeToNull converts an optional time into its sql.NullTime form for
// binding as a statement argument.
func TimeToNull(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// StringToNull converts an optional string into its sql.NullString form.
func StringToNull(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
