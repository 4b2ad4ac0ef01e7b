package domain

// OtpCode is a short-lived password-reset code.
// PK: email. One live code per address; a new issuance overwrites the old one.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL and double-checked on read,
// since TTL deletion is lazy.
type OtpCode struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      int    `json:"otp" dynamodbav:"otp"`
	IssuedAt  int64  `json:"issued_at" dynamodbav:"issued_at"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
