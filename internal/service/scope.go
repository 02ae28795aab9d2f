package service

import (
	"github.com/google/uuid"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/pkg/jwt"
)

// EffectiveOutlet computes the outlet filter actually applied to a query.
// The policy comes from model.RoleScopes: OWNER passes its explicit filter
// through, every other role is pinned to the outlet in its own credential
// regardless of what the request asked for.
func EffectiveOutlet(claims *jwt.Claims, requested *uuid.UUID) *uuid.UUID {
	if model.RoleScopes[claims.Role] == model.ScopeAny {
		return requested
	}
	return claims.OutletID
}

// TargetOutlet resolves which outlet a write lands on. Outlet-scoped roles
// always write to their own outlet; naming a different one is rejected.
// OWNER and PURCHASING must name the outlet explicitly.
func TargetOutlet(claims *jwt.Claims, requested *uuid.UUID) (uuid.UUID, error) {
	if claims.Role.IsOutletScoped() {
		if claims.OutletID == nil {
			return uuid.Nil, validationErr("outletId", "Outlet ID is required")
		}
		if requested != nil && *requested != *claims.OutletID {
			return uuid.Nil, ErrOutletForbidden
		}
		return *claims.OutletID, nil
	}

	if requested == nil {
		return uuid.Nil, validationErr("outletId", "Outlet ID is required")
	}
	return *requested, nil
}
