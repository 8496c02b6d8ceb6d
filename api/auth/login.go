package auth

import (
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract login request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.auth.checkLoginInformation"), gecho.Send())
		return
	}

	user, err := arm.authService.Login(body)
	if err != nil {
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidCredentials"), gecho.Send())
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		arm.logger.Error("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user)
	if err != nil {
		arm.logger.Error("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	// Admin status is resolved per login so revocation takes effect on the
	// next session, not only after token expiry.
	isAdmin, err := arm.authService.IsAdmin(user.Id)
	if err != nil {
		arm.logger.Error("Failed to check admin membership", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		isAdmin = false
	}

	go func() {
		if err := arm.authService.UpdateLastLogin(user.Id); err != nil {
			arm.logger.Error("Failed to update last login", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		}
	}()

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedIn"),
		gecho.WithData(&structs.AuthResponse{
			User:    user,
			IsAdmin: isAdmin,
		}),
		gecho.Send(),
	)
}
