package i

import (
	dmn "github.com/beka-birhanu/mazegen-api/domain"
)

// Authenticator handles user registration and sign-in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
