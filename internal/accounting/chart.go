package accounting

import "github.com/google/uuid"

// AccountCode is a stable chart-of-accounts identifier. The posting and
// allocation workflows depend on this fixed set existing per
// organization.
type AccountCode string

const (
	CodeCash          AccountCode = "1110"
	CodeReceivable    AccountCode = "1200"
	CodeTaxReceivable AccountCode = "1400"
	CodePayable       AccountCode = "2110"
	CodeTaxPayable    AccountCode = "2150"
)

// ChartAccounts maps account codes to ledger account ids for one
// organization. Codes absent from the organization's chart are simply
// missing from the map.
type ChartAccounts map[AccountCode]uuid.UUID

// Require returns the account id for code, or a validation error when
// the organization's chart has no account with that code. A missing
// required code is a configuration error and never defaulted.
func (c ChartAccounts) Require(code AccountCode) (uuid.UUID, error) {
	id, ok := c[code]
	if !ok {
		return uuid.Nil, Validationf("account with code %s is not configured", code)
	}

	return id, nil
}

// invoiceAccountCodes is the fixed code set resolved when posting an
// invoice of the given type.
func invoiceAccountCodes(t InvoiceType) []AccountCode {
	if t == InvoiceTypeSales {
		return []AccountCode{CodeReceivable, CodeTaxPayable}
	}

	return []AccountCode{CodePayable, CodeTaxReceivable}
}

// paymentAccountCodes is the fixed code set resolved when posting a
// payment journal.
func paymentAccountCodes() []AccountCode {
	return []AccountCode{CodeCash, CodeReceivable, CodePayable}
}
