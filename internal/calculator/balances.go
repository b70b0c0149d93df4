package calculator

import (
	"fmt"

	"bucketsplit/internal/models"
)

// ComputeBalances folds all transactions into per-participant net
// balances plus the two aggregate totals. Positive balance means the
// group owes that participant, negative means that participant owes the
// group.
//
// For each expense the payer is credited the full amount (they fronted
// the money) and every participant, payer included, is debited their
// share. Credits mirror this with signs inverted: the receiver is
// debited the full amount and every participant is credited their
// share. For any complete transaction set the balances therefore sum to
// zero, up to floating-point rounding.
//
// Expenses are processed in the order supplied, then credits in the
// order supplied. The result has an entry for every participant, even
// with an empty transaction list. The returned Summary carries no
// settlement plan; see PlanSettlements.
func ComputeBalances(participantIDs []string, expenses []models.Expense, credits []models.Credit) (*models.Summary, error) {
	balances := make(map[string]float64, len(participantIDs))
	for _, uid := range participantIDs {
		balances[uid] = 0
	}

	summary := &models.Summary{Balances: balances}

	for _, expense := range expenses {
		summary.TotalExpenses += expense.Amount

		splits, err := ComputeSplit(expense.Amount, expense.Split, participantIDs)
		if err != nil {
			return nil, fmt.Errorf("split expense %s: %w", expense.ID, err)
		}

		// The payer fronted the money and is owed it back.
		balances[expense.PaidBy] += expense.Amount

		// Everyone who shares the expense owes their portion.
		for uid, share := range splits {
			balances[uid] -= share
		}
	}

	for _, credit := range credits {
		summary.TotalCredits += credit.Amount

		splits, err := ComputeSplit(credit.Amount, credit.Split, participantIDs)
		if err != nil {
			return nil, fmt.Errorf("split credit %s: %w", credit.ID, err)
		}

		// The receiver holds money that belongs to the group.
		balances[credit.ReceivedBy] -= credit.Amount

		// Everyone who shares the credit gets their portion back.
		for uid, share := range splits {
			balances[uid] += share
		}
	}

	return summary, nil
}

// Summarize is the full engine pass: balances, totals and the
// settlement plan for one bucket snapshot.
func Summarize(participantIDs []string, expenses []models.Expense, credits []models.Credit) (*models.Summary, error) {
	summary, err := ComputeBalances(participantIDs, expenses, credits)
	if err != nil {
		return nil, err
	}
	summary.Settlements = PlanSettlements(summary.Balances)
	return summary, nil
}
