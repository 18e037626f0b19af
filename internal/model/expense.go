package model

import "time"

// ExpenseCategory groups deductible business expenses.
type ExpenseCategory string

// Expense category constants.
const (
	ExpenseVehicle    ExpenseCategory = "vehicle"
	ExpenseEquipment  ExpenseCategory = "equipment"
	ExpenseSupplies   ExpenseCategory = "supplies"
	ExpenseSoftware   ExpenseCategory = "software"
	ExpensePhone      ExpenseCategory = "phone"
	ExpenseHomeOffice ExpenseCategory = "home-office"
	ExpenseOther      ExpenseCategory = "other"
)

// ClassifiedExpense represents a debit transaction matched to a deductible
// expense rule. DeductibleAmount is Amount scaled by the matched rule's
// deduction rate, so it is always within [0, Amount].
type ClassifiedExpense struct {
	Date              time.Time
	Subcategory       string
	SourceDescription string
	Category          ExpenseCategory
	Amount            float64
	DeductibleAmount  float64
}
