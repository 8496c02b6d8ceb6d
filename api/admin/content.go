package admin

import (
	"lumi_noir_server/lib"
	"lumi_noir_server/locale"
	"lumi_noir_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpsertContent handles PUT /admin/content/{key}. All languages of the key
// are saved in one batch so a partial edit never clears other translations.
func (arm *AdminRoutesManager) UpsertContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.content.keyRequired"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ContentUpsertRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.content.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	for lang := range body.Entries {
		if !locale.IsSupported(lang) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.content.unsupportedLanguage"),
				gecho.WithData(map[string]string{"lang": lang}),
				gecho.Send(),
			)
			return
		}
	}

	if err := arm.contentService.UpsertEntries(r.Context(), key, body.Entries); err != nil {
		arm.logger.Error("Failed to save content", gecho.Field("key", key), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.content.failedToSave"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.content.saved"),
		gecho.Send(),
	)
}

// UploadHeroImage handles POST /admin/content/hero with a multipart "image"
// file. The previous hero object is replaced.
func (arm *AdminRoutesManager) UploadHeroImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.content.invalidForm"),
			gecho.Send(),
		)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.content.imageRequired"),
			gecho.Send(),
		)
		return
	}
	defer file.Close()

	path, err := arm.contentService.SetHeroImage(r.Context(), file, header)
	if err != nil {
		arm.logger.Error("Failed to set hero image", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.content.heroUploadFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.content.heroUpdated"),
		gecho.WithData(map[string]any{
			"path": path,
			"url":  arm.storageService.PublicURL(path),
		}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteHeroImage(w http.ResponseWriter, r *http.Request) {
	if err := arm.contentService.RemoveHeroImage(r.Context()); err != nil {
		arm.logger.Error("Failed to remove hero image", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.content.heroRemoveFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.content.heroRemoved"),
		gecho.Send(),
	)
}
