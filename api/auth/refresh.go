package auth

import (
	"errors"
	"lumi_noir_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates both tokens off a valid refresh token. The old
// refresh token is blacklisted so it cannot be replayed.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notLoggedIn"), gecho.Send())
		return
	}

	resp, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidToken) || errors.Is(err, lib.ErrExpiredToken) {
			lib.ClearCookie(lib.AccessCookieName, w)
			lib.ClearCookie(lib.RefreshCookieName, w)
			gecho.Unauthorized(w, gecho.WithMessage("error.auth.sessionExpired"), gecho.Send())
			return
		}

		arm.logger.Error("Failed to refresh tokens", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.refreshFailed"), gecho.Send())
		return
	}

	if claims, err := lib.ParseToken(refreshToken, arm.cfg.Auth.RefreshTokenSecret); err == nil {
		if err := arm.cacheService.BlacklistToken(claims.Jti, claims.Exp); err != nil {
			arm.logger.Error("Failed to blacklist rotated refresh token", gecho.Field("error", err))
		}
	}

	lib.SetCookie(lib.RefreshCookieName, resp.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, resp.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	if resp.User != nil {
		resp.User.PasswordHash = ""
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.tokensRefreshed"),
		gecho.WithData(resp),
		gecho.Send(),
	)
}
