package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxVisitorIDKey   = "visitor_id" // string
	VisitorCookieName = "visitor_token"

	visitorTTL = 365 * 24 * time.Hour
)

// 訪問者トークン（HS256）の発行と検証
type VisitorTokens struct {
	secret []byte
	now    func() time.Time
}

func NewVisitorTokens(secret string) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), now: time.Now}
}

func (v *VisitorTokens) Issue(visitorID string) (string, time.Time, error) {
	now := v.now()
	expiresAt := now.Add(visitorTTL)

	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 正しければ visitor_id を返す
func (v *VisitorTokens) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid visitor token")
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.New("invalid visitor id")
	}
	return claims.Subject, nil
}

// cookie か Bearer の訪問者トークンを確認する。
// 無い・不正なら新しい訪問者としてcookieを発行する。
func Visitor(tokens *VisitorTokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := rawVisitorToken(c); raw != "" {
				if id, err := tokens.Parse(raw); err == nil {
					c.Set(CtxVisitorIDKey, id)
					return next(c)
				}
			}

			//新しい訪問者
			id := uuid.NewString()
			signed, expiresAt, err := tokens.Issue(id)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			c.SetCookie(&http.Cookie{
				Name:     VisitorCookieName,
				Value:    signed,
				Path:     "/",
				Expires:  expiresAt,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(CtxVisitorIDKey, id)
			return next(c)
		}
	}
}

func rawVisitorToken(c echo.Context) string {
	if ck, err := c.Cookie(VisitorCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	//Bearer形式ならtokenを抜く
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func VisitorID(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxVisitorIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
