package models

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Profile is the public projection of a user. It shares its primary key
// with the owning User row and is provisioned on signup.
type Profile struct {
	ID        string `gorm:"primaryKey" json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Role      Role   `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
}
