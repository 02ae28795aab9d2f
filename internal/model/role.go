package model

// Role identifies what a user is allowed to do and which outlet
// scope applies to their queries.
type Role string

const (
	RoleOwner            Role = "OWNER"
	RolePurchasing       Role = "PURCHASING"
	RoleOutletCafe       Role = "OUTLET_CAFE"
	RoleOutletRestaurant Role = "OUTLET_RESTAURANT"
	RoleOutletMiniMarket Role = "OUTLET_MINI_MARKET"
)

// ScopeMode is the outlet-scoping policy applied to a role's queries.
type ScopeMode string

const (
	ScopeAny ScopeMode = "any"      // may filter by any outlet, or none
	ScopeOwn ScopeMode = "own-only" // forced to the outlet in the credential
)

// RoleScopes is the central policy table: which outlet scope each role gets.
// Every role except OWNER is pinned to its own outlet (PURCHASING has no
// outlet affiliation, so its effective filter resolves to "no outlet").
var RoleScopes = map[Role]ScopeMode{
	RoleOwner:            ScopeAny,
	RolePurchasing:       ScopeOwn,
	RoleOutletCafe:       ScopeOwn,
	RoleOutletRestaurant: ScopeOwn,
	RoleOutletMiniMarket: ScopeOwn,
}

// OutletRoles are the roles tied to a single point of sale.
func OutletRoles() []Role {
	return []Role{RoleOutletCafe, RoleOutletRestaurant, RoleOutletMiniMarket}
}

// IsOutletScoped reports whether the role must carry an outlet affiliation.
func (r Role) IsOutletScoped() bool {
	switch r {
	case RoleOutletCafe, RoleOutletRestaurant, RoleOutletMiniMarket:
		return true
	}
	return false
}

func (r Role) Valid() bool {
	_, ok := RoleScopes[r]
	return ok
}
