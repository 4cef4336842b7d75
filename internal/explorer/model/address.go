package model

// AddressTransaction is one row of the address to transaction mapping.
type AddressTransaction struct {
	TransactionID string
	BlockTime     int64
}

// AddressTransactionsQuery fetches up to Limit rows strictly before Before, or strictly after
// After, newest or oldest first respectively. With neither set the newest rows are returned.
type AddressTransactionsQuery struct {
	Script string
	Before int64
	After  int64
	Limit  int
}

// AddressPage is the id-only result of pagination.
type AddressPage struct {
	TransactionIDs []string
	Newest         int64
	Oldest         int64
	HasNewer       bool
	HasOlder       bool
}

// Capabilities describes optional storage features detected at startup.
type Capabilities struct {
	AddressIndex bool
}
