package auth

import (
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract register request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.auth.checkRegistrationInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		// Unique violations return 409 Conflict (already logged as warn in service)
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.auth.emailAlreadyRegistered"), gecho.Send())
			return
		}

		gecho.InternalServerError(w, gecho.WithMessage("error.auth.registrationFailed"), gecho.Send())
		return
	}

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithMessage("success.auth.userRegistered"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
