package pricing

// FreeUnits computes how many units come free under a buy-N-get-M rule.
// For every full buyCount units purchased, freeCount units are granted,
// capped at the purchased quantity so a rule with freeCount >= buyCount
// cannot grant more units than were bought.
func FreeUnits(quantity, buyCount, freeCount int) int {
	if buyCount <= 0 || freeCount <= 0 || quantity < buyCount {
		return 0
	}
	free := (quantity / buyCount) * freeCount
	if free > quantity {
		free = quantity
	}
	return free
}
