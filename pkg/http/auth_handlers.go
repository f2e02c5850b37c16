package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"pawhub.xyz/pet-feeder-service/pkg/feeder"
)

func validationFailed(c *gin.Context, issues z.ZogIssueMap) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  z.Issues.SanitizeMap(issues),
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(3).Max(50).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if issues := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	user, err := rs.Feeder.Auth.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, feeder.ErrUserNotFound):
		respondError(c, http.StatusUnauthorized, "User not found")
		return
	case errors.Is(err, feeder.ErrInvalidPassword):
		respondError(c, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	session := rs.Sessions.Create(user.ID, user.Username)
	c.SetCookie(SessionCookieName, session.Token, rs.Sessions.TTLSeconds(), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		rs.Sessions.Delete(token)
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (rs *RestfulServer) SessionInfo(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err == nil && token != "" {
		if session, ok := rs.Sessions.Get(token); ok {
			c.JSON(http.StatusOK, gin.H{
				"success":       true,
				"authenticated": true,
				"user": gin.H{
					"id":       session.UserID,
					"username": session.Username,
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "authenticated": false})
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

var changePasswordRequestSchema = z.Struct(z.Shape{
	"OldPassword":     z.String().Min(1).Required(),
	"NewPassword":     z.String().Min(8).Required(),
	"ConfirmPassword": z.String().Min(1).Required(),
})

func (rs *RestfulServer) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if issues := changePasswordRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	if req.ConfirmPassword != req.NewPassword {
		respondError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	session := c.MustGet(contextKeySession).(Session)

	err := rs.Feeder.Auth.ChangePassword(session.Username, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, feeder.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, feeder.ErrInvalidPassword):
		respondError(c, http.StatusUnauthorized, "Old password is incorrect")
		return
	case err != nil:
		var weakErr *feeder.WeakPasswordError
		if errors.As(err, &weakErr) {
			respondError(c, http.StatusBadRequest, weakErr.Reason)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}
