package model

// GetTransactionRequest looks up a single transaction.
type GetTransactionRequest struct {
	TransactionID  string
	BlockHashHint  string
	IncludeInputs  bool
	IncludeOutputs bool
	ResolveMode    ResolveMode
}

// BlueScoreRange selects transactions accepted by blocks with Gte <= blue score < Lt.
type BlueScoreRange struct {
	Gte uint64
	Lt  uint64
}

// SearchRequest selects transactions either by ids or by accepting blue score range.
type SearchRequest struct {
	TransactionIDs []string
	BlueScoreRange *BlueScoreRange
	Fields         Fields
	ResolveMode    ResolveMode
	Acceptance     AcceptanceFilter
}

// AddressPageRequest pages the transactions of an address. Before and After are epoch
// milliseconds where zero means unset.
type AddressPageRequest struct {
	Address     string
	Limit       int
	Before      int64
	After       int64
	Fields      Fields
	ResolveMode ResolveMode
	Acceptance  AcceptanceFilter
}

// TransactionResult carries a single transaction. CacheMaxAge is in seconds; zero means no advice.
type TransactionResult struct {
	Transaction TransactionView
	CacheMaxAge int
}

type SearchResult struct {
	Transactions []TransactionView
	CacheMaxAge  int
}

// AddressPageResult is a page of address transactions together with the cursors of the adjacent pages.
type AddressPageResult struct {
	Transactions []TransactionView
	// PageCount is the number of distinct transaction ids on the page before acceptance filtering.
	PageCount   int
	HasNewer    bool
	HasOlder    bool
	NextAfter   int64
	NextBefore  int64
	CacheMaxAge int
}
