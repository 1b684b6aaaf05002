package payout

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"payout-gateway/domain/constants"
	"payout-gateway/domain/entities"
	errs "payout-gateway/errors"
)

const (
	Ref1MinLen = 1
	Ref1MaxLen = 30

	// TransferTimeLayout matches "2022-03-02T20:30:04+07:00"; fractional seconds are accepted on parse.
	TransferTimeLayout = "2006-01-02T15:04:05-07:00"
)

type TransferReq struct {
	// Bank account. Example: "0652078409"
	BankAcc string
	// Bank to withdraw to.
	Bank entities.Bank
	// Name of the account owner. Example: "Manop Tangngam"
	AccName string
	// THB to transfer. Example: 1000.50
	Amount decimal.Decimal
	// Thai phone number. Example: "0805933181"
	MobileNo string
	// Entity making the transaction. Example: "Jack Developer"
	TransactionBy string
	// External ID of the transaction, 1 to 30 characters.
	Ref1 string
	Ref2 *string
	Ref3 *string
	Ref4 *string
	// Passed through untouched; the gateway does not document them.
	LineToken *string
	Email     *string
}

// TransferReqInner is the body of POST /payout.
type TransferReqInner struct {
	BankAcc       string      `json:"bankacc"`
	BankCode      string      `json:"bankcode"`
	BankName      string      `json:"bankname"`
	AccName       string      `json:"accname"`
	Amount        json.Number `json:"amount"`
	MobileNo      string      `json:"mobileno"`
	TransactionBy string      `json:"transaction_by"`
	Ref1          string      `json:"ref1"`
	Ref2          *string     `json:"ref2,omitempty"`
	Ref3          *string     `json:"ref3,omitempty"`
	Ref4          *string     `json:"ref4,omitempty"`
	LineToken     *string     `json:"lineToken,omitempty"`
	Email         *string     `json:"email,omitempty"`
}

func validateRef1(ref1 string) error {
	n := utf8.RuneCountInString(ref1)
	if n < Ref1MinLen || n > Ref1MaxLen {
		return &errs.ValidationError{
			Field:  "ref1",
			Reason: fmt.Sprintf("length %d is outside [%d, %d]", n, Ref1MinLen, Ref1MaxLen),
		}
	}
	return nil
}

// Normalize checks the request and builds the wire document for POST /payout.
func (r TransferReq) Normalize() (TransferReqInner, error) {
	if err := validateRef1(r.Ref1); err != nil {
		return TransferReqInner{}, err
	}
	if !r.Bank.Valid() {
		return TransferReqInner{}, &errs.ValidationError{Field: "bank", Reason: entities.ErrBankNotFound.Error()}
	}

	return TransferReqInner{
		BankAcc:       r.BankAcc,
		BankCode:      fmt.Sprintf("%03d", r.Bank.Code()),
		BankName:      r.Bank.DisplayName(),
		AccName:       r.AccName,
		Amount:        json.Number(r.Amount.String()),
		MobileNo:      r.MobileNo,
		TransactionBy: r.TransactionBy,
		Ref1:          r.Ref1,
		Ref2:          r.Ref2,
		Ref3:          r.Ref3,
		Ref4:          r.Ref4,
		LineToken:     r.LineToken,
		Email:         r.Email,
	}, nil
}

// TransferRes exists only for a successful payout.
type TransferRes struct {
	PayoutRef           string
	TransactionID       string
	TransactionDateTime time.Time
	QRString            string
}

// TransferResInner is the reply to POST /payout. The four optional fields
// are present only when Status is the success code.
type TransferResInner struct {
	Status              int32   `json:"status"`
	Message             string  `json:"message"`
	PayoutRef           *string `json:"payout_ref,omitempty"`
	TransactionID       *string `json:"transaction_id,omitempty"`
	TransactionDateTime *string `json:"transactionDate_time,omitempty"`
	QRString            *string `json:"qrstring,omitempty"`
}

// Validate turns the reply into a TransferRes, or a GatewayError when the
// gateway refused the payout.
func (r TransferResInner) Validate() (TransferRes, error) {
	status := constants.ApiError(r.Status)
	if !status.IsSuccess() {
		return TransferRes{}, &errs.GatewayError{Status: status, Message: r.Message}
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"payout_ref", r.PayoutRef},
		{"transaction_id", r.TransactionID},
		{"transactionDate_time", r.TransactionDateTime},
		{"qrstring", r.QRString},
	}
	for _, f := range fields {
		if f.value == nil {
			return TransferRes{}, errs.NewMissingField(f.name)
		}
	}

	at, err := time.Parse(TransferTimeLayout, *r.TransactionDateTime)
	if err != nil {
		return TransferRes{}, errs.NewTimestampParse("transactionDate_time", *r.TransactionDateTime, err)
	}

	return TransferRes{
		PayoutRef:           *r.PayoutRef,
		TransactionID:       *r.TransactionID,
		TransactionDateTime: at,
		QRString:            *r.QRString,
	}, nil
}
