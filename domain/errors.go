package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// price oracle
	ErrInvalidOracleData = errors.New("invalid oracle data")
	ErrStalePrice        = errors.New("stale price")
	ErrAmountOverflow    = errors.New("amount overflow")
	ErrNoPriceFeed       = errors.New("no price feed")

	// auction lifecycle
	ErrNotOwnerOrNotApproved = errors.New("not owner or not approved")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrAuctionInactive       = errors.New("auction inactive")
	ErrAuctionAlreadySettled = errors.New("auction already settled")
	ErrAuctionNotYetEnded    = errors.New("auction not yet ended")
	ErrBidTooLow             = errors.New("bid too low")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrPaymentMismatch       = errors.New("payment mismatch")
	ErrTreasuryNotSet        = errors.New("treasury not set")

	// custody
	ErrTransferFailed      = errors.New("transfer failed")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// access and concurrency
	ErrUnauthorized  = errors.New("unauthorized")
	ErrFeeOutOfRange = errors.New("fee out of range")
	ErrReentrantCall = errors.New("reentrant call")
	ErrAuctionLocked = errors.New("auction locked")
)

// TransferOp names the custody leg that failed.
type TransferOp string

const (
	TransferOpPull  TransferOp = "pull"
	TransferOpPush  TransferOp = "push"
	TransferOpAsset TransferOp = "asset"
)

// TransferError reports a failed asset or funds movement. It matches
// ErrTransferFailed with errors.Is and unwraps to the collaborator's error.
type TransferError struct {
	Op      TransferOp
	Unit    Address
	Account Address
	Err     error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed: %s %s for %s: %v", e.Op, e.Unit, e.Account, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}
