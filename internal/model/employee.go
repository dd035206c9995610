package model

// Employee mirrors the `employees` table.  Due is not a column: it is
// computed as salary - saved inside the read queries and returned to the
// client alongside the stored fields.
type Employee struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Mobile        *string `json:"mobile"`
	WorkType      *string `json:"work_type"`
	EmployeeCode  *string `json:"employee_code"`
	PF            *string `json:"pf"`
	Advance       string  `json:"advance"` // "Yes" | "No"
	AdvanceAmount float64 `json:"advance_amount"`
	SalaryType    string  `json:"salary_type"` // "Fixed" | "Variable"
	Salary        float64 `json:"salary"`
	Saved         float64 `json:"saved"`
	Due           float64 `json:"due"` // salary - saved, computed at read time
}

// NormalizeAdvance folds any input into the Yes/No enum the table stores.
func NormalizeAdvance(v string) string {
	if v == "Yes" {
		return "Yes"
	}
	return "No"
}

// NormalizeSalaryType folds any input into the Fixed/Variable enum.
func NormalizeSalaryType(v string) string {
	if v == "Variable" {
		return "Variable"
	}
	return "Fixed"
}
