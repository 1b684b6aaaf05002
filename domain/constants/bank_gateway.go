package constants

import "fmt"

// ApiError is the status code the payout gateway embeds in every response.
type ApiError int32

const ApiSuccess ApiError = 1000

var apiStatusMessage = map[ApiError]string{
	1000:  "Success",
	-2000: "Amount over 100,000 THB waiting to transfer, manual transfer",
	1899:  "We cannot process this transaction at the moment (1899)",
	1999:  "We cannot process this transaction at the moment (1999)",
	5009:  "Incorrect 'Account To' number. Please try again",
	5016:  "Please enter only Arabic numerals",
	6000:  "Amount exceeds transfer limit for today. Please re-enter amount again.",
	9001:  "This service is temporarily unavailable and will be back soon",
	9003:  "You are about to make a similar transfer-same amount, same recipient. Please check, you transaction details before proceeding further.",
	-1001: "Invalid json request",
	-1002: "Invalid Authorization",
	-1003: "Duplicate Transaction",
	-1004: "Invalid payout config",
	-1009: "Balance is not enough",
	9091:  "Request has no response from the bank. Please try again later.",
}

func (status ApiError) Code() int32 {
	return int32(status)
}

func (status ApiError) IsSuccess() bool {
	return status == ApiSuccess
}

// IsKnown reports whether the gateway documents this code.
func (status ApiError) IsKnown() bool {
	_, ok := apiStatusMessage[status]
	return ok
}

// Describe always returns a printable message, falling back to a generic one for undocumented codes.
func (status ApiError) Describe() string {
	if msg, ok := apiStatusMessage[status]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error with code %d", int32(status))
}

func (status ApiError) String() string {
	return status.Describe()
}
