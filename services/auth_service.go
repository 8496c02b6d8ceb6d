package services

import (
	"context"
	"crypto/rand"
	"lumi_noir_server/database"
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

func (as *AuthService) Login(authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()
	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(context.Background())
	if err != nil {
		mappedErr := lib.MapPgError(err)

		as.logger.Debug("Database query during login",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("error_detail", lib.GetDetailForLogging(mappedErr)),
		)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	user.PasswordHash = ""

	return user, nil
}

func (as *AuthService) Register(registerRequest *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()
	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}
	user := &tables.User{
		Email:        registerRequest.Email,
		PasswordHash: passwordHash,
	}
	user, err = database.Query[tables.User](as.db).Insert(context.Background(), user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate user",
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", registerRequest.Email),
			)
		}

		return nil, mappedErr
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	user.PasswordHash = ""

	return user, nil
}

// IsAdmin reports whether the user belongs to the admin set. Admin rows are
// provisioned out of band; membership is the only check.
func (as *AuthService) IsAdmin(userID uuid.UUID) (bool, error) {
	exists, err := database.Query[tables.Admin](as.db).Where("user_id", userID).Exists(context.Background())
	if err != nil {
		return false, lib.MapPgError(err)
	}
	return exists, nil
}

// HashPassword derives an argon2id hash of the password using the given
// parameters and encodes it for storage.
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return lib.EncodeArgon2Hash(p, salt, hash), nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a stored hash, using
// the parameters the hash was originally derived with.
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	p, salt, stored, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return lib.SecureCompare(hash, stored), nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	return as.generateToken(user, as.cfg.Auth.AccessTokenSecret, as.GetAccessTokenExpiration())
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	return as.generateToken(user, as.cfg.Auth.RefreshTokenSecret, as.GetRefreshTokenExpiration())
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) generateToken(user *tables.User, secret string, exp time.Time) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.Id.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
		"jti":   uuid.New().String(),
	})
	return token.SignedString([]byte(secret))
}

func (as *AuthService) RefreshAccessToken(refreshToken string) (*structs.AuthResponse, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Error("Failed to parse refresh token", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		as.logger.Warn("Refresh token has expired", gecho.Field("exp", claims.Exp))
		return nil, lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(claims.Sub)
	if err != nil {
		as.logger.Error("Failed to get user by ID during token refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, err
	}
	if user == nil {
		return nil, lib.ErrInvalidToken
	}

	newAccessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new access token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new refresh token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	isAdmin, err := as.IsAdmin(user.Id)
	if err != nil {
		as.logger.Warn("Failed to check admin membership during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		isAdmin = false
	}

	return &structs.AuthResponse{
		User:         user,
		IsAdmin:      isAdmin,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (as *AuthService) GetUserByID(userId uuid.UUID) (*tables.User, error) {
	user, err := database.Query[tables.User](as.db).Where("id", userId).First(context.Background())
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

func (as *AuthService) GetRefreshTokenSecret() string {
	return as.cfg.Auth.RefreshTokenSecret
}

func (as *AuthService) UpdateLastLogin(userId uuid.UUID) error {
	updates := map[string]any{
		"last_login": time.Now(),
	}
	_, err := database.Query[tables.User](as.db).Where("id", userId).Update(context.Background(), updates)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

// GetDB returns the database instance (helper method for accessing db)
func (as *AuthService) GetDB() *database.DB {
	return as.db
}
