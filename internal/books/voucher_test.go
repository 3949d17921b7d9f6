package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name  string
		lines []VoucherLine
		want  bool
	}{
		{
			name: "balanced pair",
			lines: []VoucherLine{
				{AccountCode: "1001", Debit: 100},
				{AccountCode: "4005", Credit: 100},
			},
			want: true,
		},
		{
			name: "unbalanced",
			lines: []VoucherLine{
				{AccountCode: "1001", Debit: 100},
				{AccountCode: "4005", Credit: 90},
			},
			want: false,
		},
		{
			name: "within float tolerance",
			lines: []VoucherLine{
				{AccountCode: "1001", Debit: 0.1},
				{AccountCode: "1001", Debit: 0.2},
				{AccountCode: "4005", Credit: 0.3},
			},
			want: true,
		},
		{
			name:  "empty lines balance trivially",
			lines: nil,
			want:  true,
		},
		{
			name: "multi-leg split",
			lines: []VoucherLine{
				{AccountCode: "1001", Debit: 60},
				{AccountCode: "1002", Debit: 40},
				{AccountCode: "4005", Credit: 100},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBalance(tt.lines))
		})
	}
}

func TestVoucherValidate(t *testing.T) {
	valid := Voucher{
		VoucherNo: "JV-001",
		Date:      "2025-01-10",
		Type:      VoucherJournal,
		Lines: []VoucherLine{
			{AccountCode: "1001", Debit: 100},
			{AccountCode: "4005", Credit: 100},
		},
	}
	assert.NoError(t, valid.Validate())

	noNumber := valid
	noNumber.VoucherNo = ""
	assert.ErrorIs(t, noNumber.Validate(), ErrVoucherNoRequired)

	noLines := valid
	noLines.Lines = nil
	assert.ErrorIs(t, noLines.Validate(), ErrVoucherNoLines)

	badType := valid
	badType.Type = "Memo"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidVoucherType)
}

func TestLineTotals(t *testing.T) {
	lines := []VoucherLine{
		{Debit: 60},
		{Debit: 40},
		{Credit: 100},
	}
	debit, credit := LineTotals(lines)
	assert.Equal(t, 100.0, debit)
	assert.Equal(t, 100.0, credit)
}

func TestAccountValidate(t *testing.T) {
	valid := Account{Code: "1001", Name: "Cash in Hand", Type: TypeAsset}
	assert.NoError(t, valid.Validate())

	noCode := valid
	noCode.Code = ""
	assert.ErrorIs(t, noCode.Validate(), ErrInvalidAccountCode)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrAccountNameRequired)

	badType := valid
	badType.Type = "Unknown"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidAccountType)
}

func TestNormalBalance(t *testing.T) {
	assert.Equal(t, "Debit", NormalBalance(TypeAsset))
	assert.Equal(t, "Debit", NormalBalance(TypeExpense))
	assert.Equal(t, "Credit", NormalBalance(TypeLiability))
	assert.Equal(t, "Credit", NormalBalance(TypeEquity))
	assert.Equal(t, "Credit", NormalBalance(TypeRevenue))
}

func TestOpeningDebitCredit(t *testing.T) {
	d, c := OpeningDebitCredit(500)
	assert.Equal(t, 500.0, d)
	assert.Equal(t, 0.0, c)

	d, c = OpeningDebitCredit(-300)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 300.0, c)

	d, c = OpeningDebitCredit(0)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 0.0, c)
}
