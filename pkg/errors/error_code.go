package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Parameter/validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeMissingParameter     ErrorCode = 101
	ErrCodeInvalidType          ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeInvalidThreshold     ErrorCode = 104
	ErrCodeInvalidFraction      ErrorCode = 105
	ErrCodeInvalidMultiplier    ErrorCode = 106
	ErrCodeInvalidConfiguration ErrorCode = 107
	ErrCodeInvalidOrder         ErrorCode = 108

	// Data errors (200-299)
	ErrCodeDataNotFound     ErrorCode = 200
	ErrCodeInsufficientData ErrorCode = 201
	ErrCodeNoDataFound      ErrorCode = 202
	ErrCodeDataParseFailed  ErrorCode = 203

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 300
	ErrCodeIndicatorNotFound    ErrorCode = 301

	// Strategy errors (400-499)
	ErrCodeStrategyConfigError  ErrorCode = 400
	ErrCodeStrategyRuntimeError ErrorCode = 401
	ErrCodeUnknownStrategy      ErrorCode = 402
	ErrCodeVersionMismatch      ErrorCode = 403
	ErrCodeStrategyAborted      ErrorCode = 404

	// Trading errors (500-599)
	ErrCodeOrderFailed       ErrorCode = 500
	ErrCodePositionNotFound  ErrorCode = 501
	ErrCodePositionExists    ErrorCode = 502
	ErrCodeLegPlacementFail  ErrorCode = 503
	ErrCodeUnknownInstrument ErrorCode = 504

	// Engine errors (600-699)
	ErrCodeEngineConfigError ErrorCode = 600
	ErrCodeEngineNoStrategy  ErrorCode = 601
	ErrCodeEngineNoData      ErrorCode = 602

	// Journal errors (700-799)
	ErrCodeJournalInitFailed  ErrorCode = 700
	ErrCodeJournalWriteFailed ErrorCode = 701
	ErrCodeJournalQueryFailed ErrorCode = 702
)
