// Package verify checks declared type identifiers against a live database.
//
// An identifier that does not match the database's own catalog is not caught
// at build time; it surfaces later as a protocol or decoding failure. The
// checks here report such mismatches; they never correct them.
package verify

import (
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// Status is the outcome of checking one entry.
type Status int

const (
	StatusOK Status = iota
	StatusMismatch
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMismatch:
		return "mismatch"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Result is the check of a single catalog entry.
type Result struct {
	Entry  sqltypes.Entry
	Status Status
	// Got and GotArray are the identifiers found in the database.
	Got      uint32
	GotArray uint32
	// GotName is the type name the driver reported.
	GotName string
}

// Report collects the results of one verification run.
type Report struct {
	Backend string
	Server  string
	Results []Result
}

// Failed returns the results that are not OK.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status != StatusOK {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every entry matched.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}
