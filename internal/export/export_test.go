package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{in: "", want: export.FormatCSV},
		{in: "CSV", want: export.FormatCSV},
		{in: "xlsx", want: export.FormatXLSX},
		{in: "excel", want: export.FormatXLSX},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Metadata(t *testing.T) {
	assert.Equal(t, "text/csv", export.FormatCSV.ContentType())
	assert.Equal(t, "leads_export.csv", export.FormatCSV.Filename("leads_export"))
	assert.Contains(t, export.FormatXLSX.ContentType(), "spreadsheetml")
	assert.Equal(t, "leads_export.xlsx", export.FormatXLSX.Filename("leads_export"))
}

func sampleTable() *export.Table {
	table := &export.Table{Sheet: "Report", Headers: []string{"Date", "Description", "Amount"}}
	table.Append("2024-01-05", "Fuel", decimal.RequireFromString("60.50"))
	table.Append("2024-01-06", nil)
	return table
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatCSV, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, records[0])
	assert.Equal(t, []string{"2024-01-05", "Fuel", "60.5"}, records[1])
	assert.Equal(t, []string{"2024-01-06", "", ""}, records[2], "short rows are padded")
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatXLSX, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())
	header, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)
	desc, err := f.GetCellValue("Report", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fuel", desc)
	amount, err := f.GetCellValue("Report", "C2")
	require.NoError(t, err)
	assert.Equal(t, "60.5", amount)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, export.Write(&buf, export.Format("pdf"), sampleTable()))
}
