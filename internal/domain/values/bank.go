package values

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docbr/docbr/internal/domain/errors"
)

// BankKind classifies a financial institution
type BankKind string

const (
	BankKindCommercial  BankKind = "commercial"
	BankKindDigital     BankKind = "digital"
	BankKindCooperative BankKind = "cooperative"
)

// Bank describes a financial institution registered in the national
// clearing system (COMPE).
type Bank struct {
	Code string   `json:"code"`
	Name string   `json:"name"`
	Kind BankKind `json:"kind"`
}

var banksByCode = map[string]Bank{
	"001": {Code: "001", Name: "Banco do Brasil", Kind: BankKindCommercial},
	"033": {Code: "033", Name: "Santander", Kind: BankKindCommercial},
	"077": {Code: "077", Name: "Banco Inter", Kind: BankKindDigital},
	"104": {Code: "104", Name: "Caixa Econômica Federal", Kind: BankKindCommercial},
	"212": {Code: "212", Name: "Banco Original", Kind: BankKindDigital},
	"237": {Code: "237", Name: "Bradesco", Kind: BankKindCommercial},
	"260": {Code: "260", Name: "Nubank", Kind: BankKindDigital},
	"290": {Code: "290", Name: "PagSeguro", Kind: BankKindDigital},
	"323": {Code: "323", Name: "Mercado Pago", Kind: BankKindDigital},
	"336": {Code: "336", Name: "C6 Bank", Kind: BankKindDigital},
	"341": {Code: "341", Name: "Itaú", Kind: BankKindCommercial},
	"356": {Code: "356", Name: "Banco Real", Kind: BankKindCommercial},
	"380": {Code: "380", Name: "PicPay", Kind: BankKindDigital},
	"389": {Code: "389", Name: "Banco Mercantil do Brasil", Kind: BankKindCommercial},
	"399": {Code: "399", Name: "HSBC", Kind: BankKindCommercial},
	"403": {Code: "403", Name: "Cora", Kind: BankKindDigital},
	"422": {Code: "422", Name: "Banco Safra", Kind: BankKindCommercial},
	"453": {Code: "453", Name: "Banco Rural", Kind: BankKindCommercial},
	"633": {Code: "633", Name: "Banco Rendimento", Kind: BankKindCommercial},
	"652": {Code: "652", Name: "Itaú Unibanco Holding", Kind: BankKindCommercial},
	"655": {Code: "655", Name: "Neon", Kind: BankKindDigital},
	"745": {Code: "745", Name: "Citibank", Kind: BankKindCommercial},
	"756": {Code: "756", Name: "Sicoob", Kind: BankKindCooperative},
}

// LookupBank resolves a COMPE bank code to institution details. Codes
// shorter than 3 digits are zero-padded.
func LookupBank(code string) (Bank, error) {
	normalized := onlyDigits(code)
	if normalized == "" || len(normalized) > 3 {
		return Bank{}, errors.NewValidationError("INVALID_BANK_CODE",
			fmt.Sprintf("bank code must have 1 to 3 digits, got %q", code))
	}
	normalized = strings.Repeat("0", 3-len(normalized)) + normalized

	bank, ok := banksByCode[normalized]
	if !ok {
		return Bank{}, errors.NewNotFoundError(fmt.Sprintf("bank %s", normalized))
	}
	return bank, nil
}

// ListBanks returns every registered institution ordered by code.
func ListBanks() []Bank {
	banks := make([]Bank, 0, len(banksByCode))
	for _, b := range banksByCode {
		banks = append(banks, b)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i].Code < banks[j].Code })
	return banks
}
