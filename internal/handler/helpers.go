package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// currentUserID reads the user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return userID, true
}

// respondStoreError maps missing rows to 404; everything else is a 500.
// Ownership checks happen in SQL, so a foreign record also lands here as 404.
func respondStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts RFC3339 timestamps and plain dates. Empty input is
// not an error; it means the field was omitted.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date: " + s)
}
