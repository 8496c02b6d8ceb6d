package auth

import (
	"lumi_noir_server/lib"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleCSRF hands out a fresh CSRF token. The token is set as a JS-readable
// cookie and echoed in the body so SPA and non-browser clients can both use it.
func (arm *AuthRoutesManager) HandleCSRF(w http.ResponseWriter, r *http.Request) {
	token, err := lib.GenerateRandomToken()
	if err != nil {
		arm.logger.Error("Failed to generate CSRF token", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.csrf.failedToGenerate"),
			gecho.Send(),
		)
		return
	}

	expiry := time.Now().Add(24 * time.Hour)
	lib.SetCSRFCookie(token, expiry, w)

	gecho.Success(w,
		gecho.WithMessage("success.csrf.generated"),
		gecho.WithData(map[string]string{
			"csrf_token": token,
		}),
		gecho.Send(),
	)
}
