package middleware

import (
	"fmt"
	"strings"
	"time"

	"Cofrinho/config"
	appErrors "Cofrinho/internal/errors"
	"Cofrinho/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const UserIDKey = "user_id"

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type JwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJwtService(cfg config.JWTConfig) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET não configurado")
	}
	return &JwtService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JwtService) ParseToken(tokenString string) (ulid.ULID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ulid.ULID{}, err
	}

	return pkg.ParseULID(claims.UserID)
}

// AuthMiddleware exige um bearer token valido e publica o id do usuario em
// c.Set(UserIDKey) como string.
func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortWithError(c, appErrors.ErrUnauthorized.WithDetails(map[string]interface{}{
				"reason": "token ausente",
			}))
			return
		}

		userID, err := jwtSvc.ParseToken(strings.TrimSpace(token))
		if err != nil {
			abortWithError(c, appErrors.ErrUnauthorized.WithError(err).WithDetails(map[string]interface{}{
				"reason": "token inválido",
			}))
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *appErrors.AppError) {
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.StatusCode, payload)
}
