package types

import "time"

type Role string

const (
	RoleFounder  Role = "founder"
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// Profile is the application-side record for an identity-provider user.
// ID is the Cognito subject claim.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  *string   `db:"full_name" json:"fullName"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
