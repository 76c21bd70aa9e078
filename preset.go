package moneymanager

// Preset is a category shortcut shown on the entry form. The icon is an
// opaque display token owned by the presentation layer.
type Preset struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type TxType `json:"type"`
}

// Built-in presets. These are fixed; users extend them through the
// document's custom set.
var (
	ExpensePresets = []Preset{
		{Name: "Food", Icon: "fast-food-outline", Type: Expense},
		{Name: "Transport", Icon: "bus-outline", Type: Expense},
		{Name: "Shopping", Icon: "cart-outline", Type: Expense},
		{Name: "Bills", Icon: "receipt-outline", Type: Expense},
		{Name: "Entertainment", Icon: "film-outline", Type: Expense},
		{Name: "Health", Icon: "medkit-outline", Type: Expense},
		{Name: "Other", Icon: "ellipsis-horizontal-outline", Type: Expense},
	}

	IncomePresets = []Preset{
		{Name: "Salary", Icon: "cash-outline", Type: Income},
		{Name: "Business", Icon: "briefcase-outline", Type: Income},
		{Name: "Gift", Icon: "gift-outline", Type: Income},
		{Name: "Interest", Icon: "trending-up-outline", Type: Income},
		{Name: "Other", Icon: "ellipsis-horizontal-outline", Type: Income},
	}
)

// Presets returns the built-in presets of the given type followed by the
// matching custom ones, in their stored order.
func (s *State) Presets(typ TxType) []Preset {
	var out []Preset
	if typ == Income {
		out = append(out, IncomePresets...)
	} else {
		out = append(out, ExpensePresets...)
	}
	for _, p := range s.CustomPresets {
		if p.Type == typ {
			out = append(out, p)
		}
	}
	return out
}
