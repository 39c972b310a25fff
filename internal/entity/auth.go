package entity

// Account is an operator allowed to sign into the storefront admin area.
type Account struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
	Role         Role   `json:"role" yaml:"role"`
}

func (a Account) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}
