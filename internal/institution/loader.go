package institution

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CatalogFile is the file name looked up in the data directory.
const CatalogFile = "institutions.csv"

// LoadFromDataDir loads the institution catalog from dataDir. The returned
// directory is always usable: on error it serves only Fallback.
func LoadFromDataDir(dataDir string) (*Directory, error) {
	path := filepath.Join(dataDir, CatalogFile)
	fp, err := os.Open(path)
	if err != nil {
		return NewDirectory(nil), err
	}
	defer fp.Close()

	records, err := parseCSV(fp)
	if err != nil {
		return NewDirectory(nil), fmt.Errorf("loading %s: %w", path, err)
	}
	return NewDirectory(records), nil
}

// parseCSV reads rows with at least the country, name and address columns.
// Column order is taken from the header.
func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"country", "name", "address"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header missing %q column", required)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Record{}
	for _, row := range rows[1:] {
		rec := Record{
			Country: get(row, "country"),
			Name:    get(row, "name"),
			Address: get(row, "address"),
		}
		if rec.Country == "" || rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
