package octav

// Chain identifies the network a transaction happened on.
type Chain struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Protocol is the DeFi protocol a transaction interacted with. A zero value
// means a plain wallet transfer.
type Protocol struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Asset is a single asset movement within a transaction. Balance, Price and
// Value are decimal strings as delivered by the API; they are passed through
// to CSV output without numeric conversion to preserve precision.
type Asset struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Contract string `json:"contract"`
	Balance  string `json:"balance"`
	Price    string `json:"price"`
	Value    string `json:"value"`
}

// Transaction is one on-chain event as reported by /v1/transactions.
//
// AssetsIn and AssetsOut are independently ordered; the API makes no promise
// that index i of one corresponds economically to index i of the other.
type Transaction struct {
	Hash      string    `json:"hash"`
	Timestamp Timestamp `json:"timestamp"`
	Chain     Chain     `json:"chain"`
	Protocol  Protocol  `json:"protocol"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Type      string    `json:"type"`
	AssetsIn  []Asset   `json:"assetsIn"`
	AssetsOut []Asset   `json:"assetsOut"`
	ValueFiat string    `json:"valueFiat"`
	Fees      string    `json:"fees"`
	FeesFiat  string    `json:"feesFiat"`
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// StatusEntry reports per-address sync state from /v1/status.
type StatusEntry struct {
	Address              string  `json:"address"`
	PortfolioLastSync    string  `json:"portfolioLastSync"`
	TransactionsLastSync *string `json:"transactionsLastSync"`
	SyncInProgress       bool    `json:"syncInProgress"`
}

// PortfolioEntry is the subset of /v1/portfolio used for summary output.
type PortfolioEntry struct {
	Address     string `json:"address"`
	Networth    string `json:"networth"`
	LastUpdated string `json:"lastUpdated"`
	CashBalance string `json:"cashBalance"`
}
