package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceReport lists the latest ending balance of every public journal and their total.
type BalanceReport struct {
	TotalBalance decimal.Decimal    `json:"totalBalance"`
	Balances     []StatementSummary `json:"balances"`
}

// JournalOverview pairs a public journal with its latest statement, if any.
type JournalOverview struct {
	Journal Journal    `json:"journal"`
	Latest  *Statement `json:"latest,omitempty"`
}

// AttachmentLink is the public metadata of an image attachment.
type AttachmentLink struct {
	AttachmentID int64  `json:"attachmentID"`
	Description  string `json:"description"`
	URL          string `json:"url"`
}

// StatementView is a statement ready for public presentation.
type StatementView struct {
	Statement   Statement        `json:"statement"`
	Lines       []StatementLine  `json:"lines"`
	Attachments []AttachmentLink `json:"attachments"`
}
