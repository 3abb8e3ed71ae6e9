package core

import "strings"

// FallbackCategory is assigned when no classification rule matches.
const FallbackCategory = "Misc. Expense"

// classifyRule maps a set of lowercase keywords to an expense category.
type classifyRule struct {
	keywords []string
	category string
}

// classifyRules is ordered: the first rule with a matching keyword wins,
// even when keywords from later rules are also present.
var classifyRules = []classifyRule{
	{keywords: []string{"uber", "united"}, category: "Travel"},
	{keywords: []string{"mcdonald", "starbucks"}, category: "Meals"},
	{keywords: []string{"sparkfun", "apple"}, category: "Equipment/Supplies"},
	{keywords: []string{"payment"}, category: "Rent/Overhead"},
}

// Classify maps a free-text transaction description to an expense category
// using ordered substring rules. It is total over all strings: anything
// unmatched, including the empty string, gets FallbackCategory.
func Classify(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return FallbackCategory
}
