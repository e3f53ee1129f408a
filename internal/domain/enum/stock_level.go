package enum

// StockLevel is the read-model classification of a product's quantity against
// the deployment's low/high thresholds.
type StockLevel string

const (
	StockLevelOut    StockLevel = "out"
	StockLevelLow    StockLevel = "low"
	StockLevelNormal StockLevel = "normal"
	StockLevelHigh   StockLevel = "high"
)

// ClassifyStock maps a quantity onto a StockLevel. Thresholds are
// configuration, not constants: out = 0, low = (0, lowThreshold),
// high = (highThreshold, inf).
func ClassifyStock(quantity, lowThreshold, highThreshold int) StockLevel {
	switch {
	case quantity <= 0:
		return StockLevelOut
	case quantity < lowThreshold:
		return StockLevelLow
	case quantity > highThreshold:
		return StockLevelHigh
	default:
		return StockLevelNormal
	}
}

func (l StockLevel) String() string {
	return string(l)
}
