// Package policy holds the role/resource/action rule table evaluated on
// every mutating or listing request.
package policy

import "github.com/labkeep-dev/labkeep/internal/models"

type Resource string

const (
	Labs     Resource = "labs"
	Bookings Resource = "bookings"
	Physical Resource = "physical"
	Virtual  Resource = "virtual"
)

type Action string

const (
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

type ruleKey struct {
	role     models.Role
	resource Resource
	action   Action
}

// Admins can do everything on every resource. For regular users the
// table is: labs are listable and create-open but not deletable,
// bookings are fully available own-scoped (the store enforces the
// scoping), and the resource inventories are off limits entirely.
var userRules = map[ruleKey]bool{
	{models.RoleUser, Labs, ActionList}:       true,
	{models.RoleUser, Labs, ActionCreate}:     true,
	{models.RoleUser, Bookings, ActionList}:   true,
	{models.RoleUser, Bookings, ActionCreate}: true,
	{models.RoleUser, Bookings, ActionDelete}: true,
}

// Allow reports whether role may perform action on resource. Unknown
// roles are denied everything.
func Allow(role models.Role, resource Resource, action Action) bool {
	if role == models.RoleAdmin {
		return true
	}
	return userRules[ruleKey{role, resource, action}]
}
