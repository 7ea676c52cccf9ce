package institution

import "strings"

// Directory maps a country index to the first institution listed for that
// country. It is built once and read concurrently without locking.
type Directory struct {
	countries []string
	first     map[string]Record
}

// NewDirectory keeps countries in order of first appearance.
func NewDirectory(records []Record) *Directory {
	d := &Directory{first: map[string]Record{}}
	for _, rec := range records {
		if _, seen := d.first[rec.Country]; seen {
			continue
		}
		d.countries = append(d.countries, rec.Country)
		d.first[rec.Country] = rec
	}
	return d
}

// Countries returns the country names in index order.
func (d *Directory) Countries() []string {
	out := make([]string, len(d.countries))
	copy(out, d.countries)
	return out
}

// Lookup returns the record for a country index. Out-of-range indices use
// index 0, and an empty directory returns Fallback.
func (d *Directory) Lookup(index int) Record {
	if len(d.countries) == 0 {
		return Fallback
	}
	if index < 0 || index >= len(d.countries) {
		index = 0
	}
	return d.first[d.countries[index]]
}

// Select honors a custom name and address only when both are non-empty
// after trimming; a partial pair falls back to the indexed record.
func (d *Directory) Select(customName, customAddress string, index int) Record {
	name := strings.TrimSpace(customName)
	addr := strings.TrimSpace(customAddress)
	if name != "" && addr != "" {
		return Record{Name: name, Address: addr}
	}
	return d.Lookup(index)
}
