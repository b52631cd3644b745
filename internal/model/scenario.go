package model

// ScenarioParameters is the complete input of one projection run.
type ScenarioParameters struct {
	InitialCapital       float64       `json:"initialCapital" yaml:"initialCapital"`
	TaxRatePercent       float64       `json:"taxRate" yaml:"taxRate"`
	InflationRatePercent float64       `json:"inflationRate" yaml:"inflationRate"`
	HorizonYears         int           `json:"years" yaml:"years"`
	AvgSalary            float64       `json:"avgSalary" yaml:"avgSalary"`
	EmployeeCount        float64       `json:"employeeCount" yaml:"employeeCount"`
	SalaryGrowthPercent  float64       `json:"salaryGrowth" yaml:"salaryGrowth"`
	Expenses             []ExpenseItem `json:"expenses" yaml:"expenses"`
	Revenues             []RevenueItem `json:"revenues" yaml:"revenues"`
}
