package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated operator's ID.
const userIDKey = contextKey("userID")

// authMethodKey records which credential authenticated the request ("api_key" or "jwt").
const authMethodKey = "authMethod"

// GetUserIDFromContext retrieves the authenticated operator ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
