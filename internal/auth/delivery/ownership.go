package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrOwnerNotFound is returned by an OwnerLookup when the resource the
// request names does not exist.
var ErrOwnerNotFound = errors.New("resource not found")

// OwnerLookup resolves the owning user id of the resource a request
// addresses, usually by loading it from a repository by path id.
type OwnerLookup func(c *gin.Context) (string, error)

// RequireOwner permits the request only when the authenticated user is
// the resource's owner. A mismatch is a 403, distinct from the 401s the
// auth middleware produces; a missing resource is a 404. Applied
// uniformly to every route that addresses a resource by id, so no
// handler re-derives the check.
func RequireOwner(lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		ownerID, err := lookup(c)
		if err != nil {
			if errors.Is(err, ErrOwnerNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			c.Abort()
			return
		}

		if ownerID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
