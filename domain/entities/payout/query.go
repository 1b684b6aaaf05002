package payout

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payout-gateway/domain/constants"
	"payout-gateway/domain/entities"
	errs "payout-gateway/errors"
)

// QueryTimeLayout matches "2022-05-17 08:41:48.320". The gateway sends no
// offset, so parsed values carry UTC.
const QueryTimeLayout = "2006-01-02 15:04:05"

// QueryReq is the body of POST /inquery-trans.
type QueryReq struct {
	// External ID of the payout request.
	Ref1 string `json:"ref1"`
}

func (r QueryReq) Normalize() (QueryReq, error) {
	if err := validateRef1(r.Ref1); err != nil {
		return QueryReq{}, err
	}
	return r, nil
}

type QueryRes struct {
	Status   constants.ApiError
	AccName  string
	BankAcc  string
	Bank     entities.Bank
	Amount   decimal.Decimal
	Ref1     string
	Ref2     *string
	Ref3     *string
	Ref4     *string
	Created  time.Time
	Transfer time.Time
	// Transaction id assigned by the receiving bank transfer.
	TransferTransactionID string
}

// QueryResInner is the tolerant reply to POST /inquery-trans: apart from
// status and message every key may be missing.
type QueryResInner struct {
	Status                FlexString  `json:"status"`
	Message               string      `json:"message"`
	AccName               *FlexString `json:"accname"`
	BankAcc               *FlexString `json:"bankacc"`
	BankCode              *FlexString `json:"bankcode"`
	Amount                *FlexString `json:"amount"`
	Ref1                  *FlexString `json:"ref1"`
	Ref2                  *FlexString `json:"ref2"`
	Ref3                  *FlexString `json:"ref3"`
	Ref4                  *FlexString `json:"ref4"`
	CreatedDate           *FlexString `json:"created_date"`
	TransferDate          *FlexString `json:"transfer_date"`
	TransferTransactionID *FlexString `json:"transfer_transactionId"`
}

// Validate turns the reply into a QueryRes. A non-success status becomes a
// GatewayError before any other field is looked at.
func (r QueryResInner) Validate() (QueryRes, error) {
	code, err := strconv.ParseInt(r.Status.String(), 10, 32)
	if err != nil {
		return QueryRes{}, &errs.MalformedResponseError{Kind: errs.ErrStatusNotInt, Field: "status", Value: r.Status.String()}
	}
	status := constants.ApiError(code)
	if !status.IsSuccess() {
		return QueryRes{}, &errs.GatewayError{Status: status, Message: r.Message}
	}

	required := []struct {
		name  string
		value *FlexString
	}{
		{"accname", r.AccName},
		{"bankacc", r.BankAcc},
		{"bankcode", r.BankCode},
		{"ref1", r.Ref1},
		{"ref2", r.Ref2},
		{"ref3", r.Ref3},
		{"ref4", r.Ref4},
		{"amount", r.Amount},
		{"created_date", r.CreatedDate},
		{"transfer_date", r.TransferDate},
		{"transfer_transactionId", r.TransferTransactionID},
	}
	for _, f := range required {
		if f.value == nil {
			return QueryRes{}, errs.NewMissingField(f.name)
		}
	}

	bank, err := parseBank(r.BankCode.String())
	if err != nil {
		return QueryRes{}, err
	}
	amount, err := parseAmount(r.Amount.String())
	if err != nil {
		return QueryRes{}, err
	}
	created, err := parseQueryTime("created_date", r.CreatedDate.String())
	if err != nil {
		return QueryRes{}, err
	}
	transferred, err := parseQueryTime("transfer_date", r.TransferDate.String())
	if err != nil {
		return QueryRes{}, err
	}

	return QueryRes{
		Status:                status,
		AccName:               r.AccName.String(),
		BankAcc:               r.BankAcc.String(),
		Bank:                  bank,
		Amount:                amount,
		Ref1:                  r.Ref1.String(),
		Ref2:                  nonEmpty(r.Ref2.String()),
		Ref3:                  nonEmpty(r.Ref3.String()),
		Ref4:                  nonEmpty(r.Ref4.String()),
		Created:               created,
		Transfer:              transferred,
		TransferTransactionID: r.TransferTransactionID.String(),
	}, nil
}

func parseBank(raw string) (entities.Bank, error) {
	code, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &errs.MalformedResponseError{Kind: errs.ErrBankCodeNotInt, Field: "bankcode", Value: raw}
	}
	bank, err := entities.BankOfCode(uint32(code))
	if err != nil {
		return 0, errs.NewUnknownBank(uint32(code))
	}
	return bank, nil
}

// parseAmount accepts thousands separators, e.g. "100,001.00".
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &errs.MalformedResponseError{Kind: errs.ErrAmountNotDecimal, Field: "amount", Value: raw}
	}
	return amount, nil
}

func parseQueryTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(QueryTimeLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewTimestampParse(field, raw, err)
	}
	return t, nil
}
