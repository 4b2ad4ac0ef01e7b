package http

import (
	"github.com/scode24/dsa-tracker-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/scode24/dsa-tracker-backend/internal/infrastructure/jwt"
	"github.com/scode24/dsa-tracker-backend/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	EntryRepo   *dynamo.EntryRepo
	OtpRepo     *dynamo.OtpRepo
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
