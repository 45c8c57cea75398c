package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/cohort-intel/internal/model"
)

// ReadCompaniesXLSX loads company records from the first sheet of an XLSX
// file. The first row is treated as the header.
func ReadCompaniesXLSX(path string) ([]model.CompanyRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("fetcher: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	var header []string
	var companies []model.CompanyRecord

	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			header = cells
			continue
		}
		if c, ok := rowToCompany(header, cells); ok {
			companies = append(companies, c)
		}
	}
	return companies, nil
}

func rowToStrings(row *xlsx.Row) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = cell.String()
	}
	return out
}
