package rota

import "github.com/shopspring/decimal"

// EstimateSalary maps payable hours to an estimated amount at a flat hourly
// rate, rounded to 2 decimal places. No tax, pension or loan deductions are
// modelled; the estimate is purely illustrative.
func EstimateSalary(payableHours float64, hourlyRate decimal.Decimal) float64 {
	return decimal.NewFromFloat(payableHours).Mul(hourlyRate).Round(2).InexactFloat64()
}
