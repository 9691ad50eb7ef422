// Package routing classifies normalized English queries into support
// departments: a deterministic keyword pass first, then nearest-exemplar
// TF-IDF similarity.
package routing

// Department is one of the nine fixed support departments. The set is
// static reference data, never mutated at runtime.
type Department string

const (
	DeptAccount  Department = "ACCOUNT"
	DeptATM      Department = "ATM"
	DeptCard     Department = "CARD"
	DeptContact  Department = "CONTACT"
	DeptFees     Department = "FEES"
	DeptFind     Department = "FIND"
	DeptLoan     Department = "LOAN"
	DeptPassword Department = "PASSWORD"
	DeptTransfer Department = "TRANSFER"
)

// All lists departments in display order; it is also the order exemplar
// phrases are flattened in, which fixes vector-stage tie-breaks.
var All = []Department{
	DeptAccount, DeptATM, DeptCard, DeptContact, DeptFees,
	DeptFind, DeptLoan, DeptPassword, DeptTransfer,
}

var labels = map[Department]string{
	DeptAccount:  "Accounts & Onboarding",
	DeptATM:      "ATM / Channel Support",
	DeptCard:     "Cards & Wallets",
	DeptContact:  "Customer Care",
	DeptFees:     "Charges & Pricing",
	DeptFind:     "ATM / Branch Locator",
	DeptLoan:     "Loans & Mortgages",
	DeptPassword: "Security & Passwords",
	DeptTransfer: "Payments & Transfers",
}

// ruleOrder is the keyword-stage iteration order. It is load-bearing:
// overlapping keyword lists (e.g. "atm swallowed my card" matches both
// ATM and CARD cues) resolve to the first department in this slice, so
// the order is fixed configuration, not an accident of map layout.
var ruleOrder = []Department{
	DeptATM, DeptCard, DeptLoan, DeptTransfer, DeptPassword,
	DeptFees, DeptFind, DeptContact, DeptAccount,
}

// keywords are unambiguous lexical cues; a literal substring hit routes
// without touching the vector stage.
var keywords = map[Department][]string{
	DeptATM:      {"atm", "cash withdrawal", "swallowed", "debit but no cash"},
	DeptCard:     {"card", "visa", "mastercard", "debit card", "credit card"},
	DeptLoan:     {"loan", "mortgage", "repayment", "interest", "borrow"},
	DeptTransfer: {"transfer", "send money", "reversal", "pending", "reverse transaction"},
	DeptPassword: {"password", "pin reset", "forgot", "login problem"},
	DeptFees:     {"fees", "charges", "annual fee", "pricing"},
	DeptFind:     {"find atm", "branch", "nearest atm", "locator"},
	DeptContact:  {"agent", "customer care", "call center", "contact support"},
	DeptAccount:  {"account", "statement", "transactions", "close account", "balance"},
}

// exemplars are the short routing phrases the fallback vector space is
// built over.
var exemplars = map[Department][]string{
	DeptAccount: {
		"open account", "create account", "close account", "account frozen",
		"recent transactions", "bank statement", "account verification", "kyc update",
		"check balance", "account balance",
	},
	DeptATM: {
		"atm swallowed my card", "no cash but debited", "failed withdrawal",
		"atm reversal", "withdrawal dispute",
	},
	DeptCard: {
		"activate card", "block card", "cancel card", "card not working",
		"international usage", "annual fee", "card balance",
	},
	DeptContact: {
		"customer care", "speak to agent", "human agent", "call center", "contact support",
	},
	DeptFees: {
		"charges too high", "check fees", "annual charges", "fee dispute",
	},
	DeptFind: {
		"find atm", "nearest atm", "find branch", "branch near me",
	},
	DeptLoan: {
		"apply for loan", "loan repayment", "mortgage", "cancel loan",
		"loan status", "interest rate", "borrow money",
	},
	DeptPassword: {
		"reset password", "forgot password", "set up password", "login problem",
	},
	DeptTransfer: {
		"cancel transfer", "make transfer", "wrong transfer", "pending transfer",
		"reverse transaction", "send money",
	},
}

// Valid reports whether dept is one of the nine known codes.
func Valid(dept Department) bool {
	_, ok := labels[dept]
	return ok
}

// Label returns the display label for a department.
func Label(dept Department) string {
	if label, ok := labels[dept]; ok {
		return label
	}
	return string(dept)
}
