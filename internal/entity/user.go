package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

func (u User) String() string {
	return fmt.Sprintf("%s %s <%s>", u.FirstName, u.LastName, u.Email)
}

// UserJwtClaims is the access token payload issued by the auth service.
type UserJwtClaims struct {
	User User
	jwt.RegisteredClaims
}
