package errors

var (
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrProductQuotaExceeded = &DomainError{
		Code:    "PRODUCT_QUOTA_EXCEEDED",
		Message: "publication limit reached for the current plan",
	}
	ErrHighlightQuotaExceeded = &DomainError{
		Code:    "HIGHLIGHT_QUOTA_EXCEEDED",
		Message: "highlight limit reached for the current plan",
	}
	ErrAccountBlocked = &DomainError{
		Code:    "ACCOUNT_BLOCKED",
		Message: "account is blocked",
	}
	ErrNotBusinessAccount = &DomainError{
		Code:    "NOT_BUSINESS_ACCOUNT",
		Message: "operation requires a business account",
	}
	ErrInvalidNIF = &DomainError{
		Code:    "INVALID_NIF",
		Message: "NIF must contain exactly 10 digits",
	}
	ErrBranchOfBranch = &DomainError{
		Code:    "BRANCH_DEPTH",
		Message: "a branch cannot have branches of its own",
	}
	ErrAlreadyProcessed = &DomainError{
		Code:    "ALREADY_PROCESSED",
		Message: "request was already processed",
	}
	ErrPaymentRejected = &DomainError{
		Code:    "PAYMENT_REJECTED",
		Message: "payment was rejected by the gateway",
	}
)
