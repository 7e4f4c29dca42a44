package gin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
)

// writeJSON encodes v as the response body. Successful responses carry an
// ETag of their body so clients can revalidate with If-None-Match; the
// upstream page is scraped again either way.
func writeJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + genericErrorMessage + `"}`)
	}

	if status == http.StatusOK {
		etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
		c.Header("ETag", etag)
		if etagMatches(c.GetHeader("If-None-Match"), etag) {
			c.Status(http.StatusNotModified)
			return
		}
	}

	c.Data(status, "application/json", body)
}

// etagMatches reports whether an If-None-Match value matches etag. It
// accepts "*", comma-separated lists and weak W/ tags.
func etagMatches(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}
