package content

import (
	"lumi_noir_server/handling"
	"lumi_noir_server/lib"
	"lumi_noir_server/locale"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// requestLanguage picks the language for a request: an explicit ?lang= wins,
// then the language cookie, then the negotiated Accept-Language header.
func requestLanguage(r *http.Request) locale.Language {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return locale.Parse(lang)
	}
	if lang, err := lib.GetCookieValue(lib.LangCookie, r); err == nil && locale.IsSupported(lang) {
		return locale.Parse(lang)
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"))
}

// FetchContent handles GET /content/{key}?lang=fr.
func (crm *ContentRoutesManager) FetchContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.content.keyRequired"),
			gecho.Send(),
		)
		return
	}

	lang := requestLanguage(r)

	resp, err := crm.contentService.GetContent(r.Context(), key, lang)
	if err != nil {
		handling.HandleError(err, "error.content.failedToFetch", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(resp),
		gecho.Send(),
	)
}

// FetchHeroImage handles GET /content/hero-image. An empty URL means no custom
// hero is set and the storefront should use its built-in fallback.
func (crm *ContentRoutesManager) FetchHeroImage(w http.ResponseWriter, r *http.Request) {
	path, err := crm.contentService.HeroImagePath(r.Context())
	if err != nil {
		handling.HandleError(err, "error.content.failedToFetch", crm.logger, w)
		return
	}

	url := ""
	if path != "" {
		url = crm.storageService.PublicURL(path)
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"url": url,
		}),
		gecho.Send(),
	)
}

// FetchDictionary handles GET /i18n/{lang} and returns the full UI string
// dictionary for a language, English-filled for any missing keys.
func (crm *ContentRoutesManager) FetchDictionary(w http.ResponseWriter, r *http.Request) {
	langStr := chi.URLParam(r, "lang")
	if !locale.IsSupported(langStr) {
		gecho.NotFound(w,
			gecho.WithMessage("error.content.unsupportedLanguage"),
			gecho.Send(),
		)
		return
	}

	lang := locale.Parse(langStr)
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"lang":    string(lang),
			"rtl":     lang.IsRTL(),
			"strings": locale.Dictionary(lang),
		}),
		gecho.Send(),
	)
}
