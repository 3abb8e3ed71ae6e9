package core

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Uber 063015 SF**POOL**", "Travel"},
		{"United Airlines", "Travel"},
		{"McDonald's", "Meals"},
		{"STARBUCKS #1234", "Meals"},
		{"SparkFun", "Equipment/Supplies"},
		{"Apple Store", "Equipment/Supplies"},
		{"AUTOMATIC PAYMENT - THANK", "Rent/Overhead"},
		{"Madison Bicycle Shop", "Misc. Expense"},
		{"", "Misc. Expense"},
		{"   ", "Misc. Expense"},
	}
	for _, tc := range cases {
		if got := Classify(tc.in); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Rule order is part of the contract: a description matching both the travel
// and the rent rules must resolve to the earlier rule.
func TestClassifyPrecedence(t *testing.T) {
	if got := Classify("Uber payment"); got != "Travel" {
		t.Fatalf("expected earlier rule to win, got %q", got)
	}
	if got := Classify("payment to starbucks"); got != "Meals" {
		t.Fatalf("expected Meals rule before Rent/Overhead, got %q", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	for _, in := range []string{"UBER", "uber", "UbEr trip"} {
		if got := Classify(in); got != "Travel" {
			t.Fatalf("Classify(%q) = %q, want Travel", in, got)
		}
	}
}
