package controllers

import (
	"github.com/curiokart/CurioKart/checkout"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const checkoutDraftKey = "checkout_draft"

// currentUser pulls the authenticated user set by the auth middleware. On
// failure it has already written the response.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return models.User{}, false
	}
	return user, true
}

// loadDraft returns the session's checkout draft, creating a fresh one at the
// details step when none exists.
func loadDraft(c *gin.Context, draftID string) *checkout.Draft {
	session := sessions.Default(c)
	if stored := session.Get(checkoutDraftKey); stored != nil {
		if draft, ok := stored.(checkout.Draft); ok {
			return &draft
		}
	}
	return checkout.NewDraft(draftID)
}

// saveDraft persists the draft back to the session.
func saveDraft(c *gin.Context, draft *checkout.Draft) error {
	session := sessions.Default(c)
	session.Set(checkoutDraftKey, *draft)
	return session.Save()
}

// clearDraft removes the checkout draft, ending the attempt.
func clearDraft(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(checkoutDraftKey)
	return session.Save()
}
