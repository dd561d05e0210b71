package domain

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region InvalidAmountError

type InvalidAmountError struct {
	Msg string
}

func (e *InvalidAmountError) Error() string {
	return e.Msg
}

func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

//endregion

//region ChangeComputationError

// ChangeComputationError signals a misconfigured denomination set, not a
// user-facing business failure.
type ChangeComputationError struct {
	Msg string
}

func (e *ChangeComputationError) Error() string {
	return e.Msg
}

func (e *ChangeComputationError) Is(target error) bool {
	_, ok := target.(*ChangeComputationError)
	return ok
}

//endregion
