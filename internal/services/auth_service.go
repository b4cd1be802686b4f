package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

const invalidCredentialsMsg = "invalid username or password"

type AuthService struct {
	UserRepo  repositories.UserRepository
	Sessions  repositories.SessionStore
	Secret    []byte
	TokenTTL  time.Duration
	RequestID string
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates an account and logs it in immediately. Validation order
// is email uniqueness, then username uniqueness, then password match; the
// first failing rule is the one reported.
func (s AuthService) Register(in RegisterInput) (models.User, string, error) {
	username := utils.TrimOrEmpty(in.Username)
	email := utils.TrimOrEmpty(in.Email)

	if username == "" {
		return models.User{}, "", domain.ValidationError{Field: "username", Msg: "required"}
	}
	if email == "" {
		return models.User{}, "", domain.ValidationError{Field: "email", Msg: "required"}
	}
	if in.Password == "" {
		return models.User{}, "", domain.ValidationError{Field: "password", Msg: "required"}
	}

	emailTaken, err := s.UserRepo.EmailExists(email)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	if emailTaken {
		return models.User{}, "", domain.ValidationError{Field: "email", Msg: "an account with this email already exists"}
	}

	usernameTaken, err := s.UserRepo.UsernameExists(username)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	if usernameTaken {
		return models.User{}, "", domain.ValidationError{Field: "username", Msg: "an account with this username already exists"}
	}

	if in.Password != in.ConfirmPassword {
		return models.User{}, "", domain.ValidationError{Field: "confirm_password", Msg: "passwords do not match"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	id, err := s.UserRepo.Create(username, email, string(hash))
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	user := models.User{ID: id, Username: username, Email: email}
	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "register", "user_id registered")
	return user, token, nil
}

// Login checks the credentials and issues a token. Unknown user and wrong
// password produce the same failure so usernames cannot be enumerated.
func (s AuthService) Login(username, password string) (models.User, string, error) {
	creds, err := s.UserRepo.GetCredentials(utils.TrimOrEmpty(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.UnauthorizedError{Msg: invalidCredentialsMsg}
		}
		return models.User{}, "", domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", domain.UnauthorizedError{Msg: invalidCredentialsMsg}
	}

	token, err := s.issueToken(creds.User)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return creds.User, token, nil
}

// Logout revokes the presented token. Missing or garbage tokens are not an
// error; logout is idempotent.
func (s AuthService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	ttl := time.Duration(0)
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(exp), 0))
	}

	if err := s.Sessions.Revoke(ctx, jti, ttl); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "logout", "token revoked")
	return nil
}

// ParseToken validates the signature and expiry and returns the claims.
func (s AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return claims, nil
}

// IsRevoked reports whether the token id has been denied by a logout.
func (s AuthService) IsRevoked(ctx context.Context, claims jwt.MapClaims) (bool, error) {
	jti, _ := claims["jti"].(string)
	return s.Sessions.IsRevoked(ctx, jti)
}

func (s AuthService) issueToken(u models.User) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(s.Secret)
}
