package books

// DefaultChart is the seed chart of accounts written to storage the first
// time the application runs against an empty dataset. Codes follow the usual
// small-business convention: 1xxx assets, 2xxx liabilities, 3xxx equity,
// 4xxx revenue, 5xxx cost of goods sold, 6xxx operating expenses.
var DefaultChart = []Account{
	// Assets
	{ID: "1", Code: "1001", Name: "Cash in Hand", Type: TypeAsset},
	{ID: "2", Code: "1002", Name: "Bank Account", Type: TypeAsset},
	{ID: "3", Code: "1101", Name: "Accounts Receivable - Trade Debtors", Type: TypeAsset},
	{ID: "4", Code: "1201", Name: "Medicines Inventory", Type: TypeAsset},
	{ID: "5", Code: "1202", Name: "Vaccines Inventory", Type: TypeAsset},
	{ID: "6", Code: "1203", Name: "Pet Food Inventory", Type: TypeAsset},
	{ID: "7", Code: "1204", Name: "Veterinary Equipment Inventory", Type: TypeAsset},
	{ID: "8", Code: "1301", Name: "Prepaid Rent", Type: TypeAsset},
	{ID: "9", Code: "1302", Name: "Prepaid Insurance", Type: TypeAsset},
	{ID: "10", Code: "1401", Name: "Clinic Equipment", Type: TypeAsset},
	{ID: "11", Code: "1402", Name: "Laboratory Equipment", Type: TypeAsset},
	{ID: "12", Code: "1403", Name: "Furniture & Fixtures", Type: TypeAsset},
	{ID: "13", Code: "1404", Name: "Accumulated Depreciation", Type: TypeAsset},

	// Liabilities
	{ID: "14", Code: "2001", Name: "Accounts Payable - Suppliers", Type: TypeLiability},
	{ID: "15", Code: "2002", Name: "Salaries Payable", Type: TypeLiability},
	{ID: "16", Code: "2003", Name: "Tax Payable", Type: TypeLiability},
	{ID: "17", Code: "2101", Name: "Bank Loan", Type: TypeLiability},

	// Equity
	{ID: "18", Code: "3001", Name: "Owner Capital", Type: TypeEquity},
	{ID: "19", Code: "3002", Name: "Owner Drawings", Type: TypeEquity},
	{ID: "20", Code: "3003", Name: "Retained Earnings", Type: TypeEquity},

	// Revenue
	{ID: "21", Code: "4001", Name: "Medicine Sales", Type: TypeRevenue},
	{ID: "22", Code: "4002", Name: "Vaccine Sales", Type: TypeRevenue},
	{ID: "23", Code: "4003", Name: "Pet Food Sales", Type: TypeRevenue},
	{ID: "24", Code: "4004", Name: "Equipment Sales", Type: TypeRevenue},
	{ID: "25", Code: "4005", Name: "Clinical Services Income", Type: TypeRevenue},

	// Cost of goods sold
	{ID: "26", Code: "5001", Name: "Cost of Medicines Sold", Type: TypeExpense},
	{ID: "27", Code: "5002", Name: "Cost of Vaccines Sold", Type: TypeExpense},
	{ID: "28", Code: "5003", Name: "Cost of Pet Food Sold", Type: TypeExpense},
	{ID: "29", Code: "5004", Name: "Cost of Equipment Sold", Type: TypeExpense},

	// Operating expenses
	{ID: "30", Code: "6001", Name: "Salaries Expense", Type: TypeExpense},
	{ID: "31", Code: "6002", Name: "Rent Expense", Type: TypeExpense},
	{ID: "32", Code: "6003", Name: "Utilities Expense", Type: TypeExpense},
	{ID: "33", Code: "6004", Name: "Marketing & Advertising Expense", Type: TypeExpense},
	{ID: "34", Code: "6005", Name: "Depreciation Expense", Type: TypeExpense},
	{ID: "35", Code: "6006", Name: "Repairs & Maintenance Expense", Type: TypeExpense},
}

// SampleStock is the seed inventory written when the stock collection is
// missing. Value is quantity x unit price, precomputed.
var SampleStock = []StockItem{
	{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 200, UnitPrice: 15, Value: 3000},
	{ItemCode: "ITM-002", ItemName: "Feline Deworming Tablets", Quantity: 150, UnitPrice: 25, Value: 3750},
	{ItemCode: "ITM-003", ItemName: "Rabies Vaccine", Quantity: 100, UnitPrice: 50, Value: 5000},
	{ItemCode: "ITM-004", ItemName: "Canine Distemper Vaccine", Quantity: 120, UnitPrice: 45, Value: 5400},
	{ItemCode: "ITM-005", ItemName: "Premium Dog Food - 5kg", Quantity: 80, UnitPrice: 60, Value: 4800},
	{ItemCode: "ITM-006", ItemName: "Premium Cat Food - 3kg", Quantity: 90, UnitPrice: 55, Value: 4950},
	{ItemCode: "ITM-007", ItemName: "Surgical Gloves Pack", Quantity: 300, UnitPrice: 5, Value: 1500},
	{ItemCode: "ITM-008", ItemName: "Stethoscope", Quantity: 25, UnitPrice: 120, Value: 3000},
	{ItemCode: "ITM-009", ItemName: "Digital Thermometer", Quantity: 40, UnitPrice: 35, Value: 1400},
	{ItemCode: "ITM-010", ItemName: "Veterinary Syringes Pack", Quantity: 500, UnitPrice: 2, Value: 1000},
	{ItemCode: "ITM-011", ItemName: "Pet Shampoo 500ml", Quantity: 150, UnitPrice: 10, Value: 1500},
	{ItemCode: "ITM-012", ItemName: "Dental Care Treats for Dogs", Quantity: 100, UnitPrice: 20, Value: 2000},
	{ItemCode: "ITM-013", ItemName: "Vaccination Cooler Box", Quantity: 15, UnitPrice: 250, Value: 3750},
	{ItemCode: "ITM-014", ItemName: "IV Fluids 500ml", Quantity: 60, UnitPrice: 30, Value: 1800},
	{ItemCode: "ITM-015", ItemName: "Pet Bandages Pack", Quantity: 200, UnitPrice: 8, Value: 1600},
}
