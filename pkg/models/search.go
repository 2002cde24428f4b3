package models

import (
	"context"

	"github.com/uptrace/bun"
	"golang.org/x/text/cases"
)

// SearchKey case-folds s for matching against the name_search columns.
// SQLite's LOWER only folds ASCII, so folding happens here instead.
func SearchKey(s string) string {
	return cases.Fold().String(s)
}

var (
	_ bun.BeforeAppendModelHook = (*Venue)(nil)
	_ bun.BeforeAppendModelHook = (*Artist)(nil)
)

func (v *Venue) BeforeAppendModel(_ context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery, *bun.UpdateQuery:
		v.NameSearch = SearchKey(v.Name)
	}
	return nil
}

func (a *Artist) BeforeAppendModel(_ context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery, *bun.UpdateQuery:
		a.NameSearch = SearchKey(a.Name)
	}
	return nil
}
