package models

// Application roles.
const (
	RoleUser     = "user"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

// Permission constants
const (
	// Marketplace permissions
	PermissionProductRead    = "product:read"
	PermissionProductWrite   = "product:write"
	PermissionProductPromote = "product:promote"
	PermissionCompanyWrite   = "company:write"
	PermissionPlanPurchase   = "plan:purchase"

	// Finance permissions
	PermissionFinanceRead  = "finance:read"
	PermissionFinanceWrite = "finance:write"

	// Messaging permissions
	PermissionMessageRead  = "message:read"
	PermissionMessageWrite = "message:write"

	// ATM registry permissions
	PermissionATMWrite = "atm:write"

	// User permissions
	PermissionChangePassword = "user:change-password"

	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionProductRead,
			PermissionProductWrite,
			PermissionProductPromote,
			PermissionCompanyWrite,
			PermissionPlanPurchase,
			PermissionFinanceRead,
			PermissionFinanceWrite,
			PermissionMessageRead,
			PermissionMessageWrite,
			PermissionATMWrite,
			PermissionChangePassword,
		}
	case RoleBusiness:
		return []string{
			PermissionProductRead,
			PermissionProductWrite,
			PermissionProductPromote,
			PermissionCompanyWrite,
			PermissionPlanPurchase,
			PermissionFinanceRead,
			PermissionFinanceWrite,
			PermissionMessageRead,
			PermissionMessageWrite,
			PermissionATMWrite,
			PermissionChangePassword,
		}
	case RoleUser:
		return []string{
			PermissionProductRead,
			PermissionPlanPurchase,
			PermissionFinanceRead,
			PermissionFinanceWrite,
			PermissionMessageRead,
			PermissionMessageWrite,
			PermissionATMWrite,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
