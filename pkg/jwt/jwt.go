package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El middleware y el refresh los traducen a 401.
var (
	ErrMissingSecret    = errors.New("jwt: secret vacío")
	ErrInvalidSignature = errors.New("jwt: firma inválida")
	ErrExpired          = errors.New("jwt: token expirado")
	ErrMalformed        = errors.New("jwt: token malformado")
)

// Identity son los datos del usuario que viajan dentro del token.
type Identity struct {
	ID    int64
	Email string
}

// Claims incluye los claims estándar JWT más la identidad del usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// ExpiresAtTime devuelve la expiración absoluta embebida en el token.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Option configura un Codec.
type Option func(*Codec)

// WithClock reemplaza el reloj usado para emitir y validar (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// Codec firma y verifica tokens HS256 con un secreto fijo inyectado al construirlo.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec construye el codec. Sin secreto falla: nunca se firma con una clave por defecto.
func NewCodec(secret, issuer string, ttl time.Duration, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: ttl inválido: %s", ttl)
	}
	c := &Codec{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL vigencia configurada para los tokens nuevos.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue firma un token con expiración now+ttl.
func (c *Codec) Issue(id Identity) (string, time.Time, error) {
	return c.IssueUntil(id, c.now().Add(c.ttl))
}

// IssueUntil firma un token con una expiración absoluta concreta.
func (c *Codec) IssueUntil(id Identity, expiresAt time.Time) (string, time.Time, error) {
	now := c.now()
	exp := jwt.NewNumericDate(expiresAt)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   fmt.Sprintf("%d", id.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: exp,
		},
		UserID: id.ID,
		Email:  id.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, exp.Time, nil
}

// Renew firma un token nuevo para la identidad de claims con expiración now+ttl según el
// reloj del codec. La nueva expiración siempre es posterior a la de claims, aunque JWT
// solo tenga precisión de segundos.
func (c *Codec) Renew(claims *Claims) (string, time.Time, error) {
	exp := c.now().Add(c.ttl).Truncate(time.Second)
	if old := claims.ExpiresAtTime(); !exp.After(old) {
		exp = old.Add(time.Second)
	}
	return c.IssueUntil(claims.Identity(), exp)
}

// Verify valida firma y expiración y devuelve los claims embebidos sin modificar.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}

// Identity devuelve la identidad contenida en los claims.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Email: c.Email}
}
