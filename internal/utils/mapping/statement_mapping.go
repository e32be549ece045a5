package mapping

import (
	"database/sql"

	"github.com/golder/bank_statements_api/internal/core/domain"
	"github.com/golder/bank_statements_api/internal/models"
)

// ToModelStatement converts a domain Statement to a model Statement
func ToModelStatement(d domain.Statement) models.Statement {
	m := models.Statement{
		StatementID:    d.StatementID,
		JournalID:      d.JournalID,
		Name:           d.Name,
		StatementDate:  d.Date,
		BalanceStart:   d.BalanceStart,
		BalanceEnd:     d.BalanceEnd,
		BalanceEndReal: d.BalanceEndReal,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.PreviousStatementID != nil {
		m.PreviousStatementID = sql.NullInt64{Int64: *d.PreviousStatementID, Valid: true}
	}
	return m
}

// ToDomainStatement converts a model Statement to a domain Statement
func ToDomainStatement(m models.Statement) domain.Statement {
	d := domain.Statement{
		StatementID:    m.StatementID,
		JournalID:      m.JournalID,
		Name:           m.Name,
		Date:           m.StatementDate,
		BalanceStart:   m.BalanceStart,
		BalanceEnd:     m.BalanceEnd,
		BalanceEndReal: m.BalanceEndReal,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.PreviousStatementID.Valid {
		prev := m.PreviousStatementID.Int64
		d.PreviousStatementID = &prev
	}
	return d
}

// ToModelStatementLine converts a domain StatementLine to a model StatementLine
func ToModelStatementLine(d domain.StatementLine) models.StatementLine {
	return models.StatementLine{
		LineID:      d.LineID,
		StatementID: d.StatementID,
		LineDate:    d.Date,
		PaymentRef:  d.PaymentRef,
		Amount:      d.Amount,
		Sequence:    d.Sequence,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainStatementLine converts a model StatementLine to a domain StatementLine
func ToDomainStatementLine(m models.StatementLine) domain.StatementLine {
	return domain.StatementLine{
		LineID:      m.LineID,
		StatementID: m.StatementID,
		Date:        m.LineDate,
		PaymentRef:  m.PaymentRef,
		Amount:      m.Amount,
		Sequence:    m.Sequence,
		CreatedAt:   m.CreatedAt,
	}
}
