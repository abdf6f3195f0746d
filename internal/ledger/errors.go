package ledger

import "errors"

// Kind classifies failures so callers can pick the right user-facing
// message without string matching. Anything not recognised is treated
// as infrastructure: logged, surfaced generically, never retried here.
type Kind int

const (
	KindInfrastructure Kind = iota
	KindValidation
	KindBusiness
)

var (
	ErrInvalidAmount     = errors.New("transfer amount must be positive")
	ErrSelfTransfer      = errors.New("cannot transfer to yourself")
	ErrSelfReferral      = errors.New("cannot refer yourself")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrUnknownRecipient  = errors.New("recipient is not registered")
)

func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrSelfTransfer), errors.Is(err, ErrSelfReferral):
		return KindValidation
	case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrUnknownRecipient):
		return KindBusiness
	default:
		return KindInfrastructure
	}
}
