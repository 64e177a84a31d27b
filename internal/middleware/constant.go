package middleware

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	bearerPrefix = "Bearer "

	// gin context key holding the model.Scope of an authenticated request.
	ScopeKey = "scope"
)

// Paths with the stricter auth limit.
var authPathPrefixes = []string{"/api/v1/auth", "/token"}

var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'self'",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
}

const (
	MsgRateLimited   = "Rate limit exceeded. Please try again later."
	MsgRateLimitedAr = "تم تجاوز الحد المسموح من الطلبات. يرجى المحاولة لاحقاً."
	MsgTooLarge      = "Request too large"
	MsgTooLargeAr    = "حجم الطلب كبير جداً"
)

// guardResp is the body of 413 and 429 answers.
type guardResp struct {
	Detail  string `json:"detail"`
	ErrorAr string `json:"error_ar"`
}
