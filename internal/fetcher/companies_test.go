package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCompaniesCSV(t *testing.T) {
	path := writeTempFile(t, "companies.csv", `Name,Description,Website,Location,Team Size,Batch
NeuralCo,machine learning for retailers,https://neural.co,SF,5-10,S26
PayFast,payments for restaurants,https://payfast.io,NYC,15,S26
`)

	companies, err := ReadCompaniesCSV(path)
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.Equal(t, "NeuralCo", companies[0].Name)
	assert.Equal(t, "machine learning for retailers", companies[0].Description)
	assert.Equal(t, "https://neural.co", companies[0].Website)
	assert.Equal(t, "SF", companies[0].Location)
	assert.Equal(t, "5-10", companies[0].TeamSize)
	assert.Equal(t, "S26", companies[0].Batch)
}

func TestReadCompaniesCSV_HeaderAliases(t *testing.T) {
	path := writeTempFile(t, "companies.csv", `Company,About,URL,City,Employees,Cohort
NeuralCo,ml tools,https://neural.co,SF,10,S26
`)

	companies, err := ReadCompaniesCSV(path)
	require.NoError(t, err)
	require.Len(t, companies, 1)

	c := companies[0]
	assert.Equal(t, "NeuralCo", c.Name)
	assert.Equal(t, "ml tools", c.Description)
	assert.Equal(t, "https://neural.co", c.Website)
	assert.Equal(t, "SF", c.Location)
	assert.Equal(t, "10", c.TeamSize)
	assert.Equal(t, "S26", c.Batch)
}

func TestReadCompaniesCSV_DropsNamelessRows(t *testing.T) {
	path := writeTempFile(t, "companies.csv", `Name,Website
NeuralCo,https://neural.co
,https://orphan.io
`)

	companies, err := ReadCompaniesCSV(path)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "NeuralCo", companies[0].Name)
}

func TestReadCompaniesCSV_RaggedRows(t *testing.T) {
	path := writeTempFile(t, "companies.csv", `Name,Description,Website
NeuralCo,ml tools
PayFast,payments,https://payfast.io
`)

	companies, err := ReadCompaniesCSV(path)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Empty(t, companies[0].Website)
	assert.Equal(t, "https://payfast.io", companies[1].Website)
}

func TestReadCompaniesCSV_MissingFile(t *testing.T) {
	_, err := ReadCompaniesCSV("/nonexistent/companies.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open csv")
}

func TestReadCompaniesJSON(t *testing.T) {
	path := writeTempFile(t, "companies.json", `[
  {"name": "NeuralCo", "website": "https://neural.co", "team_size": "5-10"},
  {"name": "PayFast", "location": "NYC"}
]`)

	companies, err := ReadCompaniesJSON(path)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "NeuralCo", companies[0].Name)
	assert.Equal(t, "5-10", companies[0].TeamSize)
	assert.Equal(t, "NYC", companies[1].Location)
}

func TestReadCompaniesJSON_BadFile(t *testing.T) {
	path := writeTempFile(t, "companies.json", `{"not": "an array"}`)
	_, err := ReadCompaniesJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}
