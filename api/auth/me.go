package auth

import (
	"lumi_noir_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notLoggedIn"), gecho.Send())
		return
	}

	blacklisted, err := arm.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		arm.logger.Error("Failed to check token blacklist", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.sessionCheckFailed"), gecho.Send())
		return
	}
	if blacklisted {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notLoggedIn"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		arm.logger.Error("Failed to fetch user", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.sessionCheckFailed"), gecho.Send())
		return
	}
	if user == nil {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notLoggedIn"), gecho.Send())
		return
	}

	isAdmin, err := arm.authService.IsAdmin(user.Id)
	if err != nil {
		arm.logger.Warn("Failed to check admin membership", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		isAdmin = false
	}

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user":     user,
			"is_admin": isAdmin,
		}),
		gecho.Send(),
	)
}
