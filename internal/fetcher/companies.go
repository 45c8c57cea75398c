// Package fetcher loads company records from CSV, XLSX, and JSON files.
package fetcher

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cohort-intel/internal/model"
)

// headerAliases maps normalized column headers to CompanyRecord fields.
var headerAliases = map[string]string{
	"id":          "id",
	"name":        "name",
	"company":     "name",
	"description": "description",
	"about":       "description",
	"website":     "website",
	"url":         "website",
	"location":    "location",
	"city":        "location",
	"team size":   "team_size",
	"team_size":   "team_size",
	"teamsize":    "team_size",
	"employees":   "team_size",
	"batch":       "batch",
	"cohort":      "batch",
}

// ReadCompaniesCSV loads company records from a CSV file with a header row.
func ReadCompaniesCSV(path string) ([]model.CompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv header")
	}

	var companies []model.CompanyRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read csv row")
		}
		if c, ok := rowToCompany(header, row); ok {
			companies = append(companies, c)
		}
	}
	return companies, nil
}

// ReadCompaniesJSON loads company records from a JSON array file.
func ReadCompaniesJSON(path string) ([]model.CompanyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read json")
	}

	var companies []model.CompanyRecord
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, eris.Wrap(err, "fetcher: parse json")
	}
	return companies, nil
}

// rowToCompany maps one row onto a CompanyRecord using the header. Rows with
// no name are dropped.
func rowToCompany(header, row []string) (model.CompanyRecord, bool) {
	var c model.CompanyRecord
	for i, col := range header {
		if i >= len(row) {
			break
		}
		val := strings.TrimSpace(row[i])
		if val == "" {
			continue
		}
		switch headerAliases[normalizeHeader(col)] {
		case "id":
			c.ID = val
		case "name":
			c.Name = val
		case "description":
			c.Description = val
		case "website":
			c.Website = val
		case "location":
			c.Location = val
		case "team_size":
			c.TeamSize = val
		case "batch":
			c.Batch = val
		}
	}
	return c, c.Name != ""
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
