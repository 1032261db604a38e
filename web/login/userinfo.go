package login

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// UserInfo - the signed-in user as resolved from the auth service and
// cached in the web session.
type UserInfo struct {
	IDStr       string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func (u *UserInfo) IsAdmin() bool {
	return u.Role == RoleAdmin
}
