package entities

import (
	"errors"
	"strings"
)

// ErrBankNotFound is returned when a code or acronym does not belong to a supported bank.
var ErrBankNotFound = errors.New("bank not found")

// Bank is one of the institutions the payout gateway can transfer to.
type Bank uint8

const (
	// BankUnknown is the zero value; it never resolves to a real bank.
	BankUnknown Bank = iota
	BankBangkok
	BankKasikorn
	BankKrungThai
	BankTmbThanachart
	BankSiamCommercial
	BankAyudhya
	BankKiatNakinPhatra
	BankCimbThai
	BankTisco
	BankUnitedOverseas
	BankCreditRetail
	BankLandAndHouses
	BankChina
	BankEnterpriseDevelopment
	BankAgricultural
	BankExportImport
	BankGovernmentSavings
	BankGovernmentHousing
	BankIslamic
)

type bankInfo struct {
	Code    uint32
	Acronym string
	Name    string
}

// bankTable is indexed by Bank; slot 0 stays empty for BankUnknown. Both
// reverse indexes are derived from it.
var bankTable = [...]bankInfo{
	BankBangkok:               {2, "BBL", "BANGKOK BANK PUBLIC COMPANY LTD."},
	BankKasikorn:              {4, "KBANK", "KASIKORNBANK PUBLIC COMPANY LIMITED"},
	BankKrungThai:             {6, "KTB", "KRUNG THAI BANK PUBLIC COMPANY LTD."},
	BankTmbThanachart:         {11, "TTB", "TMBTHANACHART BANK PUBLIC COMPANY LIMITED"},
	BankSiamCommercial:        {14, "SCB", "SIAM COMMERCIAL BANK PUBLIC COMPANY LTD."},
	BankAyudhya:               {25, "BAY", "BANK OF AYUDHYA PUBLIC COMPANY LTD."},
	BankKiatNakinPhatra:       {69, "KKP", "KIATNAKIN PHATRA BANK PUBLIC COMPANY LIMITED"},
	BankCimbThai:              {22, "CIMBT", "CIMB THAI BANK PUBLIC COMPANY LIMITED"},
	BankTisco:                 {67, "TISCO", "TISCO BANK PUBLIC COMPANY LIMITED"},
	BankUnitedOverseas:        {24, "UOBT", "UNITED OVERSEAS BANK (THAI) PUBLIC COMPANY LIMITED"},
	BankCreditRetail:          {71, "TCD", "THE THAI CREDIT RETAIL BANK PUBLIC COMPANY LIMITED"},
	BankLandAndHouses:         {73, "LHFG", "LAND AND HOUSES BANK PUBLIC COMPANY LMITED"},
	BankChina:                 {70, "ICBCT", "INDUSTRIAL AND COMMERCIAL BANK OF CHINA (THAI) PUBLIC COMPANY LIMITED"},
	BankEnterpriseDevelopment: {98, "SME", "SMALL AND MEDIUM ENTERPRISE DEVELOPMENT BANK OF THAILAND"},
	BankAgricultural:          {34, "BAAC", "BANK FOR AGRICULTURE AND AGRICULTURAL COOPERATIVES"},
	BankExportImport:          {35, "EXIM", "EXPORT-IMPORT BANK OF THAILAND"},
	BankGovernmentSavings:     {30, "GSB", "GOVERNMENT SAVINGS BANK"},
	BankGovernmentHousing:     {33, "GHB", "THE GOVERNMENT HOUSING BANK"},
	BankIslamic:               {66, "ISBT", "ISLAMIC BANK OF THAILAND"},
}

var (
	banksByCode    = make(map[uint32]Bank, len(bankTable))
	banksByAcronym = make(map[string]Bank, len(bankTable))
)

func init() {
	for _, b := range Banks() {
		info := bankTable[b]
		if _, dup := banksByCode[info.Code]; dup {
			panic("entities: duplicate bank code " + info.Acronym)
		}
		if _, dup := banksByAcronym[info.Acronym]; dup {
			panic("entities: duplicate bank acronym " + info.Acronym)
		}
		banksByCode[info.Code] = b
		banksByAcronym[info.Acronym] = b
	}
}

// Banks returns every supported bank in registry order.
func Banks() []Bank {
	out := make([]Bank, 0, len(bankTable)-1)
	for i := 1; i < len(bankTable); i++ {
		out = append(out, Bank(i))
	}
	return out
}

// BankOfCode resolves a numeric gateway bank code.
func BankOfCode(code uint32) (Bank, error) {
	if b, ok := banksByCode[code]; ok {
		return b, nil
	}
	return BankUnknown, ErrBankNotFound
}

// BankOfAcronym resolves a short bank name such as "KBANK" or "kbank".
func BankOfAcronym(acronym string) (Bank, error) {
	if b, ok := banksByAcronym[strings.ToUpper(strings.TrimSpace(acronym))]; ok {
		return b, nil
	}
	return BankUnknown, ErrBankNotFound
}

func (b Bank) Valid() bool {
	return b != BankUnknown && int(b) < len(bankTable)
}

func (b Bank) info() bankInfo {
	if !b.Valid() {
		return bankInfo{}
	}
	return bankTable[b]
}

func (b Bank) Code() uint32 {
	return b.info().Code
}

func (b Bank) Acronym() string {
	return b.info().Acronym
}

// DisplayName is the full legal name the gateway expects in "bankname".
func (b Bank) DisplayName() string {
	return b.info().Name
}

func (b Bank) String() string {
	return b.DisplayName()
}
