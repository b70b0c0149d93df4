package calculator

import (
	"math"
	"sort"

	"bucketsplit/internal/models"
)

// settleTolerance is the currency-unit granularity: balances within
// ±0.01 are treated as settled.
const settleTolerance = 0.01

// PlanSettlements computes an ordered settlement plan that brings every
// balance to within the tolerance of zero.
//
// Greedy loop: repeatedly match the largest debtor with the largest
// creditor and settle min(debt, credit). Each iteration fully zeroes at
// least one side, so the plan never exceeds N-1 settlements for N
// participants. Ties on either side break to the lexicographically
// smallest UID so the plan is deterministic regardless of map iteration
// order.
//
// The emitted amount is rounded to 2 decimals for display only; the
// working balances keep full precision so rounding error never
// compounds across iterations. The input map is not modified.
func PlanSettlements(balances map[string]float64) []models.Settlement {
	uids := make([]string, 0, len(balances))
	working := make(map[string]float64, len(balances))
	for uid, balance := range balances {
		uids = append(uids, uid)
		working[uid] = balance
	}
	sort.Strings(uids)

	var settlements []models.Settlement
	for {
		var debtor, creditor string
		var maxDebt, maxCredit float64

		for _, uid := range uids {
			balance := working[uid]
			if balance < -settleTolerance && -balance > maxDebt {
				maxDebt = -balance
				debtor = uid
			}
			if balance > settleTolerance && balance > maxCredit {
				maxCredit = balance
				creditor = uid
			}
		}

		// No debtor or no creditor left: everything within tolerance.
		if debtor == "" || creditor == "" {
			return settlements
		}

		amount := math.Min(maxDebt, maxCredit)
		settlements = append(settlements, models.Settlement{
			From:   debtor,
			To:     creditor,
			Amount: math.Round(amount*100) / 100,
		})

		working[debtor] += amount
		working[creditor] -= amount
	}
}
