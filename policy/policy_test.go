package policy

import (
	"testing"

	"food-truck-api/models"

	"github.com/stretchr/testify/assert"
)

func personal(id uint) *models.User {
	return &models.User{ID: id, Role: models.RolePersonal}
}

func business(id uint) *models.User {
	return &models.User{ID: id, Role: models.RoleBusiness}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.User
		action  Action
		target  Target
		allowed bool
		reason  string
	}{
		{
			name:   "anonymous cannot favorite",
			actor:  nil,
			action: ActionToggleFavorite,
			target: Target{OwnerID: 1},
			reason: MsgUnauthorized,
		},
		{
			name:   "anonymous cannot register a truck",
			actor:  nil,
			action: ActionRegisterTruck,
			reason: MsgUnauthorized,
		},
		{
			name:   "personal user cannot register a truck",
			actor:  personal(1),
			action: ActionRegisterTruck,
			reason: MsgUnauthorized,
		},
		{
			name:    "business user with no truck can register",
			actor:   business(1),
			action:  ActionRegisterTruck,
			target:  Target{ActorTrucks: 0},
			allowed: true,
		},
		{
			name:   "business user with a truck cannot register a second",
			actor:  business(1),
			action: ActionRegisterTruck,
			target: Target{ActorTrucks: 1},
			reason: MsgTruckExists,
		},
		{
			name:    "owner can edit own truck",
			actor:   business(1),
			action:  ActionEditTruck,
			target:  Target{OwnerID: 1},
			allowed: true,
		},
		{
			name:   "business user cannot edit another owner's truck",
			actor:  business(2),
			action: ActionEditTruck,
			target: Target{OwnerID: 1},
			reason: MsgUnauthorized,
		},
		{
			name:   "personal user cannot edit a truck even as record owner",
			actor:  personal(1),
			action: ActionEditTruck,
			target: Target{OwnerID: 1},
			reason: MsgUnauthorized,
		},
		{
			name:    "owner can update own truck location",
			actor:   business(1),
			action:  ActionUpdateLocation,
			target:  Target{OwnerID: 1},
			allowed: true,
		},
		{
			name:   "owner cannot favorite own truck",
			actor:  business(1),
			action: ActionToggleFavorite,
			target: Target{OwnerID: 1},
			reason: MsgFavoriteOwnTruck,
		},
		{
			name:    "personal user can favorite someone else's truck",
			actor:   personal(2),
			action:  ActionToggleFavorite,
			target:  Target{OwnerID: 1},
			allowed: true,
		},
		{
			name:   "owner cannot review own truck",
			actor:  business(1),
			action: ActionAddReview,
			target: Target{OwnerID: 1},
			reason: MsgReviewOwnTruck,
		},
		{
			name:    "business user can review another owner's truck",
			actor:   business(2),
			action:  ActionAddReview,
			target:  Target{OwnerID: 1},
			allowed: true,
		},
		{
			name:    "author can edit own review",
			actor:   personal(2),
			action:  ActionEditReview,
			target:  Target{OwnerID: 2},
			allowed: true,
		},
		{
			name:   "non-author cannot edit a review",
			actor:  personal(3),
			action: ActionEditReview,
			target: Target{OwnerID: 2},
			reason: MsgNotReviewAuthor,
		},
		{
			name:   "non-author cannot delete a review",
			actor:  business(1),
			action: ActionDeleteReview,
			target: Target{OwnerID: 2},
			reason: MsgNotReviewAuthor,
		},
		{
			name:    "author can delete own review",
			actor:   personal(2),
			action:  ActionDeleteReview,
			target:  Target{OwnerID: 2},
			allowed: true,
		},
		{
			name:    "any logged-in user can view profiles",
			actor:   personal(5),
			action:  ActionViewUser,
			allowed: true,
		},
		{
			name:   "anonymous cannot view profiles",
			actor:  nil,
			action: ActionViewUser,
			reason: MsgUnauthorized,
		},
		{
			name:    "any logged-in user can delete own account",
			actor:   business(1),
			action:  ActionDeleteAccount,
			allowed: true,
		},
		{
			name:   "unknown action is denied",
			actor:  personal(1),
			action: Action("frobnicate"),
			reason: MsgUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Decide(tt.actor, tt.action, tt.target)
			assert.Equal(t, tt.allowed, dec.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, dec.Reason)
			}
		})
	}
}
