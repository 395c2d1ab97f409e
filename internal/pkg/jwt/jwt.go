package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies the access tokens issued by the identity provider and
// mints the short-lived tokens used to open event streams. Login and token
// issuance for users live outside this service.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateStreamToken(employeeID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (employeeID string, err error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateStreamToken generates a short-lived token for SSE connections.
// EventSource cannot set an Authorization header, so the stream endpoint
// authenticates with this token in the query string instead.
func (j *JWTService) GenerateStreamToken(employeeID string) (token string, expiresIn int, err error) {
	expiresIn = 300
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "stream",
		"exp":         expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateStreamToken validates a stream token and returns the employee ID.
func (j *JWTService) ValidateStreamToken(tokenString string) (employeeID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "stream" {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	employeeID, ok = idVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return employeeID, nil
}
