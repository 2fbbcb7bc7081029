// Package suggest maps free-text descriptions onto category labels.
package suggest

import (
	"strings"
	"unicode/utf8"

	"spendflow/internal/model"
)

// MinDescriptionLength is the shortest description (in runes) worth
// suggesting on; anything shorter is treated as noise.
const MinDescriptionLength = 4

// Rule associates a category with the keywords that imply it.
type Rule struct {
	Category string
	Keywords []string
}

// Suggester performs keyword-table category lookup. The table is injected so
// it can be extended or swapped without touching the algorithm; rule order
// is the tie-break.
type Suggester struct {
	rules map[model.TransactionType][]Rule
}

// New creates a suggester over the given per-type rule table.
func New(rules map[model.TransactionType][]Rule) *Suggester {
	return &Suggester{rules: rules}
}

// NewDefault creates a suggester with the built-in keyword table.
func NewDefault() *Suggester {
	return New(DefaultRules())
}

// Suggest returns the first category whose keyword set intersects the
// description, scanning rules in table order. It reports false when the
// description is too short, the type is unknown, or nothing matches.
func (s *Suggester) Suggest(description string, txType model.TransactionType) (string, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(description)) < MinDescriptionLength {
		return "", false
	}

	lowered := strings.ToLower(description)
	for _, rule := range s.rules[txType] {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// DefaultRules is the built-in keyword table, keyed by transaction type.
// Categories match the seeded registry defaults.
func DefaultRules() map[model.TransactionType][]Rule {
	return map[model.TransactionType][]Rule{
		model.TypeExpense: {
			{Category: "food", Keywords: []string{"restaurant", "grocery", "groceries", "lunch", "dinner", "breakfast", "cafe", "coffee", "pizza", "swiggy", "zomato"}},
			{Category: "transportation", Keywords: []string{"uber", "ola", "taxi", "cab", "bus", "train", "metro", "fuel", "petrol", "diesel", "parking"}},
			{Category: "housing", Keywords: []string{"rent", "mortgage", "maintenance"}},
			{Category: "utilities", Keywords: []string{"electricity", "water bill", "gas bill", "internet", "broadband", "recharge", "mobile bill"}},
			{Category: "entertainment", Keywords: []string{"movie", "cinema", "netflix", "spotify", "concert", "game"}},
			{Category: "shopping", Keywords: []string{"amazon", "flipkart", "mall", "clothes", "shoes", "myntra"}},
			{Category: "health", Keywords: []string{"pharmacy", "medicine", "doctor", "hospital", "clinic", "gym"}},
			{Category: "education", Keywords: []string{"course", "tuition", "book", "exam", "school fee"}},
		},
		model.TypeIncome: {
			{Category: "salary", Keywords: []string{"salary", "payroll", "wages"}},
			{Category: "freelance", Keywords: []string{"freelance", "invoice", "client payment", "contract"}},
			{Category: "dividends", Keywords: []string{"dividend"}},
			{Category: "interest", Keywords: []string{"interest"}},
			{Category: "gifts", Keywords: []string{"gift", "bonus"}},
		},
		model.TypeInvestment: {
			{Category: "stocks", Keywords: []string{"stock", "shares", "equity"}},
			{Category: "mutual-funds", Keywords: []string{"mutual fund", "sip"}},
			{Category: "crypto", Keywords: []string{"bitcoin", "crypto", "ethereum"}},
			{Category: "real-estate", Keywords: []string{"property", "real estate", "plot"}},
			{Category: "bonds", Keywords: []string{"bond", "debenture"}},
			{Category: "etf", Keywords: []string{"etf", "index fund"}},
		},
		model.TypeSavings: {
			{Category: "fixed-deposit", Keywords: []string{"fixed deposit", "fd "}},
			{Category: "emergency-fund", Keywords: []string{"emergency"}},
			{Category: "retirement", Keywords: []string{"retirement", "pension", "ppf"}},
		},
		model.TypeTransfer: {
			{Category: "transfer", Keywords: []string{"transfer", "moved to", "neft", "imps", "upi"}},
		},
	}
}
