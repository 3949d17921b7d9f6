package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		want     string
	}{
		{"zero is out of stock", 0, "Out of Stock"},
		{"below threshold is low", 19, "Low Stock"},
		{"at threshold is in stock", 20, "In Stock"},
		{"plenty", 200, "In Stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatus(tt.quantity))
		})
	}
}

func TestFilterStock(t *testing.T) {
	items := []StockItem{
		{ItemCode: "ITM-001", ItemName: "Canine Multivitamins"},
		{ItemCode: "ITM-002", ItemName: "Feline Deworming Tablets"},
		{ItemCode: "ITM-003", ItemName: "Rabies Vaccine"},
	}

	assert.Len(t, FilterStock(items, ""), 3)

	byName := FilterStock(items, "feline")
	assert.Len(t, byName, 1)
	assert.Equal(t, "ITM-002", byName[0].ItemCode)

	byCode := FilterStock(items, "itm-003")
	assert.Len(t, byCode, 1)
	assert.Equal(t, "Rabies Vaccine", byCode[0].ItemName)

	assert.Empty(t, FilterStock(items, "bovine"))
}

func TestGRNValidate(t *testing.T) {
	valid := GRN{
		GRNNo: "GRN-001",
		Date:  "2025-01-05",
		Lines: []GRNLine{{ItemCode: "ITM-001", ReceivedQty: 5, UnitPrice: 15}},
	}
	assert.NoError(t, valid.Validate())

	noNumber := valid
	noNumber.GRNNo = ""
	assert.ErrorIs(t, noNumber.Validate(), ErrDocumentNoRequired)

	noLines := valid
	noLines.Lines = nil
	assert.ErrorIs(t, noLines.Validate(), ErrDocumentNoLines)
}

func TestSaleInvoiceValidate(t *testing.T) {
	valid := SaleInvoice{
		InvoiceNo: "INV-001",
		Date:      "2025-01-08",
		Lines:     []SaleLine{{ItemCode: "ITM-001", Quantity: 2, UnitPrice: 20}},
	}
	assert.NoError(t, valid.Validate())

	noNumber := valid
	noNumber.InvoiceNo = ""
	assert.ErrorIs(t, noNumber.Validate(), ErrDocumentNoRequired)
}

func TestSampleStockValuesConsistent(t *testing.T) {
	for _, it := range SampleStock {
		assert.InDelta(t, it.Quantity*it.UnitPrice, it.Value, 1e-9, "item %s", it.ItemCode)
	}
}

func TestDefaultChartCodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range DefaultChart {
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
		assert.NoError(t, a.Validate())
	}
}
