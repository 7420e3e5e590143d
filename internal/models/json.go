package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers in the dataset file and API responses.
	decimal.MarshalJSONWithoutQuotes = true
}
