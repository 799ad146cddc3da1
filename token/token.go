package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// SignedDetails are the claims carried by a session token. The Id
// claim is a per-login UUID so a single session can be revoked on
// logout without touching the others.
type SignedDetails struct {
	UserID uint
	jwt.StandardClaims
}

func Generate(userID uint, secretKey string, expirationMinutes int) (string, error) {
	claims := &SignedDetails{
		UserID: userID,

		StandardClaims: jwt.StandardClaims{
			Id: uuid.NewString(),
			ExpiresAt: time.Now().Local().Add(time.Minute * time.Duration(
				expirationMinutes)).Unix(),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secretKey))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// RevocationKey is the cache key under which a logged-out session's
// token ID is parked until the token would have expired anyway.
func RevocationKey(jti string) string {
	return "session:revoked:" + jti
}

func Validate(signedToken, secretKey string) (claims *SignedDetails, err error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		},
	)
	if err != nil {
		return
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		err = errors.New("the token is invalid")
		return
	}
	if claims.ExpiresAt < time.Now().Local().Unix() {
		err = errors.New("token is expired")
		return
	}
	return
}
