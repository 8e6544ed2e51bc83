package handlers

import (
	"strconv"

	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/gin-gonic/gin"
)

// Handler carries the per-entity stores and the signing secret. Everything a
// route needs is injected here at startup; no ambient globals.
type Handler struct {
	stores        *store.Stores
	jwtSecret     []byte
	stripeEnabled bool
}

func New(stores *store.Stores, jwtSecret []byte, stripeEnabled bool) *Handler {
	return &Handler{
		stores:        stores,
		jwtSecret:     jwtSecret,
		stripeEnabled: stripeEnabled,
	}
}

// pageParams reads the zero-based page/size query pair. Absent or unparsable
// values fall back to zero, and the store treats limit 0 as "no limit",
// matching the behavior callers already depend on.
func pageParams(c *gin.Context) (page, size int64) {
	page, _ = strconv.ParseInt(c.Query("page"), 10, 64)
	size, _ = strconv.ParseInt(c.Query("size"), 10, 64)
	if page < 0 {
		page = 0
	}
	if size < 0 {
		size = 0
	}
	return page, size
}
