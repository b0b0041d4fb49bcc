package auth

import (
	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

// RequireAdmin passes only for administrator accounts.
func RequireAdmin(user *models.User) error {
	if !user.IsAdmin {
		return common.ErrorForbidden
	}
	return nil
}

// RequireOwnerOrAdmin passes when the user owns the resource or is an
// administrator.
func RequireOwnerOrAdmin(user *models.User, ownerID int64) error {
	if user.IsAdmin || user.ID == ownerID {
		return nil
	}
	return common.ErrorForbidden
}
