package calculator

import (
	"math"
	"reflect"
	"testing"

	"bucketsplit/internal/models"
)

// applyPlan executes every settlement against a copy of the balances
// and returns the result.
func applyPlan(balances map[string]float64, plan []models.Settlement) map[string]float64 {
	result := make(map[string]float64, len(balances))
	for uid, balance := range balances {
		result[uid] = balance
	}
	for _, s := range plan {
		result[s.From] += s.Amount
		result[s.To] -= s.Amount
	}
	return result
}

func TestPlanSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
		want     []models.Settlement
	}{
		{
			name:     "two debtors tie breaks lexicographically",
			balances: map[string]float64{"alice": 60.0, "bob": -30.0, "carol": -30.0},
			want: []models.Settlement{
				{From: "bob", To: "alice", Amount: 30.0},
				{From: "carol", To: "alice", Amount: 30.0},
			},
		},
		{
			name:     "single pair",
			balances: map[string]float64{"alice": 70.0, "bob": -70.0},
			want:     []models.Settlement{{From: "bob", To: "alice", Amount: 70.0}},
		},
		{
			name:     "largest debtor pays largest creditor first",
			balances: map[string]float64{"alice": 50.0, "bob": 10.0, "carol": -45.0, "dave": -15.0},
			want: []models.Settlement{
				{From: "carol", To: "alice", Amount: 45.0},
				{From: "dave", To: "bob", Amount: 10.0},
				{From: "dave", To: "alice", Amount: 5.0},
			},
		},
		{
			name:     "all zero yields empty plan",
			balances: map[string]float64{"alice": 0, "bob": 0},
			want:     nil,
		},
		{
			name:     "balances within tolerance yield empty plan",
			balances: map[string]float64{"alice": 0.005, "bob": -0.005},
			want:     nil,
		},
		{
			name:     "empty balance map",
			balances: map[string]float64{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSettlements(tt.balances)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanSettlements() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Executing a full plan must bring every balance within the settlement
// tolerance of zero, and the plan never needs more than N-1 payments.
func TestPlanSettlementsZeroesBalances(t *testing.T) {
	balanceSets := []map[string]float64{
		{"alice": 60.0, "bob": -30.0, "carol": -30.0},
		{"alice": 33.333333, "bob": -16.666666, "carol": -16.666667},
		{"a": 12.34, "b": -5.67, "c": -3.33, "d": -3.34, "e": 0},
		{"a": 100.0, "b": 50.0, "c": -75.0, "d": -75.0},
	}

	for _, balances := range balanceSets {
		plan := PlanSettlements(balances)

		if len(plan) > len(balances)-1 {
			t.Errorf("plan for %v has %d settlements, want <= %d", balances, len(plan), len(balances)-1)
		}

		settled := applyPlan(balances, plan)
		for uid, balance := range settled {
			if math.Abs(balance) > settleTolerance+floatTol {
				t.Errorf("after plan %v, %s balance = %v, want within %v of 0", plan, uid, balance, settleTolerance)
			}
		}
	}
}

// The reported amount is rounded to 2 decimals but the working balances
// are not, so repeating decimals do not break convergence.
func TestPlanSettlementsRoundsReportedAmount(t *testing.T) {
	balances := map[string]float64{"alice": 33.333333, "bob": -33.333333}
	plan := PlanSettlements(balances)

	if len(plan) != 1 {
		t.Fatalf("got %d settlements, want 1", len(plan))
	}
	if plan[0].Amount != 33.33 {
		t.Errorf("settlement amount = %v, want 33.33", plan[0].Amount)
	}
}

func TestPlanSettlementsDoesNotMutateInput(t *testing.T) {
	balances := map[string]float64{"alice": 20.0, "bob": -20.0}
	PlanSettlements(balances)

	if balances["alice"] != 20.0 || balances["bob"] != -20.0 {
		t.Errorf("input balances mutated: %v", balances)
	}
}
