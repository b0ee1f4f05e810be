package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/domain"
)

const tokenTtl = 24 * time.Hour

type impl struct {
	jwtSecret  []byte
	msgPattern string
	clock      clock.Clock
}

// New signs tokens with jwtSecret. msgPattern is the login message with a %s for the lowercased address.
func New(jwtSecret, msgPattern string, clock clock.Clock) domain.AuthUsecase {
	return &impl{
		jwtSecret:  []byte(jwtSecret),
		msgPattern: msgPattern,
		clock:      clock,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}

	msg := fmt.Sprintf(im.msgPattern, address.ToLowerStr())
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address)); err != nil {
		ctx.WithField("err", err).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  im.clock.Now().Unix(),
			ExpiresAt: im.clock.Now().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrUnauthorized
}
