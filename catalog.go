package money

type catalogEntry struct {
	code string // alphabetic code
	num  string // numeric code
	name string // English name
}

// Common returns the commonly used currencies ordered by code.
// The order is stable across calls. The catalog is meant for currency
// pickers; amounts may use any currency, listed or not.
func Common() []Currency {
	currs := make([]Currency, len(catalog))
	for i, e := range catalog {
		currs[i] = Currency{code: e.code}
	}
	return currs
}

// IsCommon returns true if the currency is part of the common catalog.
func (c Currency) IsCommon() bool {
	_, ok := catalogIndex[c.code]
	return ok
}
