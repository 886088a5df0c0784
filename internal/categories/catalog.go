// Package categories lists the statutory campaign-finance categories.
package categories

import "github.com/efreport/efreport/internal/model"

// Entry is one category in the catalog.
type Entry struct {
	Name        string
	Kind        model.Kind
	Description string
}

// Catalog provides lookup over a fixed list of categories.
type Catalog struct {
	entries []Entry
	byName  map[string]Entry
}

// NewCatalog creates a Catalog from entries. Later duplicates win.
func NewCatalog(entries []Entry) *Catalog {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}
	return &Catalog{entries: entries, byName: byName}
}

// Default returns the catalog of the categories used on election expense reports.
func Default() *Catalog {
	return NewCatalog(defaultEntries())
}

// All returns every entry in catalog order.
func (c *Catalog) All() []Entry {
	return c.entries
}

// Lookup returns the entry for name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Known reports whether name is in the catalog.
func (c *Catalog) Known(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Unknown returns the distinct names in names that are not in the catalog,
// in first-seen order.
func (c *Catalog) Unknown(names []string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, n := range names {
		if c.Known(n) || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}

func defaultEntries() []Entry {
	return []Entry{
		{Name: "寄附", Kind: model.KindIncome, Description: "Donations, including the candidate's own funds"},
		{Name: "その他の収入", Kind: model.KindIncome, Description: "Other income such as interest"},
		{Name: "人件費", Kind: model.KindExpense, Description: "Paid campaign staff"},
		{Name: "家屋費", Kind: model.KindExpense, Description: "Campaign office and venue rental"},
		{Name: "通信費", Kind: model.KindExpense, Description: "Telephone and postage"},
		{Name: "交通費", Kind: model.KindExpense, Description: "Transport and fuel"},
		{Name: "印刷費", Kind: model.KindExpense, Description: "Posters, leaflets and other printing"},
		{Name: "広告費", Kind: model.KindExpense, Description: "Signboards, banners and advertising"},
		{Name: "文具費", Kind: model.KindExpense, Description: "Stationery"},
		{Name: "食料費", Kind: model.KindExpense, Description: "Meals for campaign workers"},
		{Name: "休泊費", Kind: model.KindExpense, Description: "Lodging and rest facilities"},
		{Name: "雑費", Kind: model.KindExpense, Description: "Miscellaneous"},
	}
}
