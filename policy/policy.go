package policy

import "food-truck-api/models"

// Action enumerates every gated operation in the app
type Action string

const (
	ActionRegisterTruck  Action = "register_truck"
	ActionEditTruck      Action = "edit_truck"
	ActionUpdateLocation Action = "update_truck_location"
	ActionToggleFavorite Action = "toggle_favorite"
	ActionAddReview      Action = "add_review"
	ActionEditReview     Action = "edit_review"
	ActionDeleteReview   Action = "delete_review"
	ActionEditProfile    Action = "edit_profile"
	ActionChangePassword Action = "change_password"
	ActionDeleteAccount  Action = "delete_account"
	ActionViewUser       Action = "view_user"
)

// Denial messages shown to the user
const (
	MsgUnauthorized     = "Access unauthorized"
	MsgTruckExists      = "Access denied. Business profile already exists."
	MsgFavoriteOwnTruck = "Cannot favorite your own truck!"
	MsgReviewOwnTruck   = "Cannot review your own truck!"
	MsgNotReviewAuthor  = "Not Authorized to modify this review!"
)

// ownershipRule says how the actor must relate to the target's owner
type ownershipRule int

const (
	ownershipAny ownershipRule = iota
	ownershipOwner
	ownershipNotOwner
)

// requirement defines what an action demands of the actor.
// All listed actions require a logged-in actor; public views never
// reach the policy.
type requirement struct {
	role      models.UserRole // "" = any role
	ownership ownershipRule
	denial    string // message on an ownership denial
}

// requirements is the authoritative rules table
var requirements = map[Action]requirement{
	ActionRegisterTruck:  {role: models.RoleBusiness},
	ActionEditTruck:      {role: models.RoleBusiness, ownership: ownershipOwner, denial: MsgUnauthorized},
	ActionUpdateLocation: {role: models.RoleBusiness, ownership: ownershipOwner, denial: MsgUnauthorized},
	ActionToggleFavorite: {ownership: ownershipNotOwner, denial: MsgFavoriteOwnTruck},
	ActionAddReview:      {ownership: ownershipNotOwner, denial: MsgReviewOwnTruck},
	ActionEditReview:     {ownership: ownershipOwner, denial: MsgNotReviewAuthor},
	ActionDeleteReview:   {ownership: ownershipOwner, denial: MsgNotReviewAuthor},
	ActionEditProfile:    {},
	ActionChangePassword: {},
	ActionDeleteAccount:  {},
	ActionViewUser:       {},
}

// Target carries the facts about the entity being acted on. Handlers must
// load the target first (404 on absence) before asking for a decision.
type Target struct {
	OwnerID     uint // user_id of the truck or review
	ActorTrucks int  // trucks currently owned by the actor (truck registration)
}

// Decision is the outcome of a policy check
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Decide evaluates whether actor may perform action against target.
// It is a pure function of its arguments; on deny, the caller must not
// commit any part of the request's mutation.
func Decide(actor *models.User, action Action, target Target) Decision {
	req, ok := requirements[action]
	if !ok {
		return deny(MsgUnauthorized)
	}
	if actor == nil {
		return deny(MsgUnauthorized)
	}
	if req.role != "" && actor.Role != req.role {
		return deny(MsgUnauthorized)
	}
	switch req.ownership {
	case ownershipOwner:
		if actor.ID != target.OwnerID {
			return deny(req.denial)
		}
	case ownershipNotOwner:
		if actor.ID == target.OwnerID {
			return deny(req.denial)
		}
	}
	// One business profile per account
	if action == ActionRegisterTruck && target.ActorTrucks > 0 {
		return deny(MsgTruckExists)
	}
	return allow()
}
