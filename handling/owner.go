package handling

import (
	"lumi_noir_server/lib"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ResolveCartOwner determines which cart partition a request operates on.
// Authenticated users own the partition keyed by their user id; anonymous
// visitors get a random owner id persisted in a cookie so their cart
// survives across requests without ever touching another visitor's.
func ResolveCartOwner(w http.ResponseWriter, r *http.Request, accessSecret string) string {
	if claims, err := lib.ExtractClaims(r, accessSecret); err == nil {
		return claims.Sub.String()
	}

	if owner, err := lib.GetCookieValue(lib.CartOwnerCookie, r); err == nil && owner != "" {
		return owner
	}

	owner := uuid.New().String()
	lib.SetCookie(lib.CartOwnerCookie, owner, time.Now().Add(365*24*time.Hour), w)
	return owner
}
