package export

// Per-platform transaction type vocabularies. The Octav type tag is
// open-ended, while each tax tool accepts its own closed set of labels, so
// every platform gets an explicit table. Tags with no entry pass through
// unchanged rather than being dropped; the destination tools treat unknown
// labels as uncategorized, which is recoverable, whereas a silently removed
// tag is not.
var typeTables = map[string]map[string]string{
	"koinly": {
		"stake":    "staking",
		"unstake":  "staking",
		"claim":    "reward",
		"airdrop":  "airdrop",
		"borrow":   "loan",
		"repay":    "loan repayment",
		"mint":     "mint",
		"transfer": "",
		"send":     "",
		"receive":  "",
		"swap":     "swap",
	},
	"cointracker": {
		"stake":   "staked",
		"unstake": "staked",
		"claim":   "staking",
		"airdrop": "airdrop",
		"mint":    "payment",
	},
	"coinledger": {
		"swap":     "Trade",
		"transfer": "Deposit",
		"send":     "Withdrawal",
		"receive":  "Deposit",
		"stake":    "Staking",
		"unstake":  "Staking",
		"claim":    "Income",
		"airdrop":  "Airdrop",
	},
	"taxbit": {
		"swap":     "Trade",
		"transfer": "Transfer In",
		"send":     "Transfer Out",
		"receive":  "Transfer In",
		"stake":    "Expense",
		"unstake":  "Income",
		"claim":    "Income",
		"airdrop":  "Income",
	},
	"tokentax": {
		"swap":     "Trade",
		"transfer": "Deposit",
		"send":     "Withdrawal",
		"receive":  "Deposit",
		"stake":    "Staking",
		"unstake":  "Staking",
		"claim":    "Income",
		"airdrop":  "Airdrop",
		"borrow":   "Borrow",
		"repay":    "Repay",
	},
	"accointing": {
		"swap":     "order",
		"transfer": "deposit",
		"send":     "withdraw",
		"receive":  "deposit",
		"stake":    "withdraw",
		"unstake":  "deposit",
		"claim":    "deposit",
		"airdrop":  "deposit",
	},
	"zenledger": {
		"swap":     "trade",
		"transfer": "receive",
		"send":     "send",
		"receive":  "receive",
		"stake":    "send",
		"unstake":  "receive",
		"claim":    "staking_reward",
		"airdrop":  "airdrop",
	},
	"crypto-tax-calculator": {
		"swap":     "trade",
		"transfer": "transfer-in",
		"send":     "transfer-out",
		"receive":  "transfer-in",
		"stake":    "staking-deposit",
		"unstake":  "staking-withdrawal",
		"claim":    "interest",
		"airdrop":  "airdrop",
		"approve":  "approval",
	},
	"tres-finance": {
		"swap":     "token_transfer",
		"transfer": "token_transfer",
		"send":     "token_transfer",
		"receive":  "token_transfer",
		"stake":    "token_transfer",
		"unstake":  "token_transfer",
		"claim":    "token_transfer",
		"airdrop":  "token_transfer",
	},
	"cryptio": {
		"swap":     "trade",
		"transfer": "deposit",
		"send":     "withdraw",
		"receive":  "deposit",
		"stake":    "withdraw",
		"unstake":  "deposit",
		"claim":    "deposit",
		"airdrop":  "deposit",
	},
}

// mapType translates a generic transaction type into the platform's
// vocabulary, falling back to the generic tag unchanged.
func mapType(platform, genericType string) string {
	table, ok := typeTables[platform]
	if !ok {
		return genericType
	}
	mapped, ok := table[genericType]
	if !ok {
		return genericType
	}
	return mapped
}
