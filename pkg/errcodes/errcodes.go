package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidSellerCode  failure.ErrorCode = "InvalidSellerCode"  // non-digit characters in the code
	InvalidOfferAmount failure.ErrorCode = "InvalidOfferAmount" // not a positive number
	SellerNotFound     failure.ErrorCode = "SellerNotFound"
	OrderNotFound      failure.ErrorCode = "OrderNotFound"
	DealAlreadyClaimed failure.ErrorCode = "DealAlreadyClaimed"
	ClaimInProgress    failure.ErrorCode = "ClaimInProgress" // a concurrent claim holds the guard
	OfferTooHigh       failure.ErrorCode = "OfferTooHigh"
	NoBroadcastTarget  failure.ErrorCode = "NoBroadcastTarget"
	StoreUnavailable   failure.ErrorCode = "StoreUnavailable"
)
