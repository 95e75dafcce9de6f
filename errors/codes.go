package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// Generic
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_CONFLICT          ErrorCode = 1006

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = 2003
	ErrorCode_AUTH_USER_ALREADY_EXISTS   ErrorCode = 2004
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 2005

	// Interview lifecycle
	ErrorCode_INTERVIEW_NOT_FOUND      ErrorCode = 3000
	ErrorCode_INTERVIEW_INVALID_STATE  ErrorCode = 3001
	ErrorCode_QUESTION_LIMIT_EXCEEDED  ErrorCode = 3002
	ErrorCode_QUESTION_NOT_FOUND       ErrorCode = 3003
	ErrorCode_ANSWER_ALREADY_SUBMITTED ErrorCode = 3004

	// AI provider
	ErrorCode_AI_PROVIDER_FAILED      ErrorCode = 4000
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 4001

	// Database
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 5000
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_CONFLICT:                   "CONFLICT",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:   "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN: "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_INTERVIEW_NOT_FOUND:        "INTERVIEW_NOT_FOUND",
	ErrorCode_INTERVIEW_INVALID_STATE:    "INTERVIEW_INVALID_STATE",
	ErrorCode_QUESTION_LIMIT_EXCEEDED:    "QUESTION_LIMIT_EXCEEDED",
	ErrorCode_QUESTION_NOT_FOUND:         "QUESTION_NOT_FOUND",
	ErrorCode_ANSWER_ALREADY_SUBMITTED:   "ANSWER_ALREADY_SUBMITTED",
	ErrorCode_AI_PROVIDER_FAILED:         "AI_PROVIDER_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:      "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
