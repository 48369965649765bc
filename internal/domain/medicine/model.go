package medicine

// Medicine is one inventory line.
type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Dosage       string  `json:"dosage"`
	Manufacturer string  `json:"manufacturer"`
	Stock        int     `json:"stock"`
	Expiry       string  `json:"expiry"`
	Price        float64 `json:"price"`
}

func (m Medicine) Key() string { return m.ID }

// Stock buckets derived from the unit count.
const (
	StockOut    = "out"
	StockLow    = "low"
	StockNormal = "normal"
)

// StockBucket classifies a unit count. Zero stock is "out", never "low".
func StockBucket(stock int) string {
	switch {
	case stock == 0:
		return StockOut
	case stock < 20:
		return StockLow
	default:
		return StockNormal
	}
}

// TypeAll is the sentinel the inventory UI sends to disable the type
// dimension; it is equivalent to an empty value.
const TypeAll = "All Types"

// Filters narrows the inventory list.
type Filters struct {
	Search string
	Type   string
	Stock  string
}

// Stats summarizes the unfiltered inventory.
type Stats struct {
	Total  int            `json:"total"`
	Low    int            `json:"low_stock"`
	Out    int            `json:"out_of_stock"`
	ByType map[string]int `json:"by_type"`
}
