package auth

import (
	"lumi_noir_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleLogout blacklists the current tokens and clears the auth cookies.
// The cart owner cookie is cleared too so the next request shops as a fresh
// guest rather than reading the logged-out user's cart.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r); err == nil {
		if claims, err := lib.ParseToken(accessToken, arm.cfg.Auth.AccessTokenSecret); err == nil {
			if err := arm.cacheService.BlacklistToken(claims.Jti, claims.Exp); err != nil {
				arm.logger.Error("Failed to blacklist access token during logout", gecho.Field("error", err))
			}
		}
	}

	if refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r); err == nil {
		if claims, err := lib.ParseToken(refreshToken, arm.cfg.Auth.RefreshTokenSecret); err == nil {
			if err := arm.cacheService.BlacklistToken(claims.Jti, claims.Exp); err != nil {
				arm.logger.Error("Failed to blacklist refresh token during logout", gecho.Field("error", err))
			}
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)
	lib.ClearCookie(lib.CartOwnerCookie, w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedOut"),
		gecho.Send(),
	)
}
