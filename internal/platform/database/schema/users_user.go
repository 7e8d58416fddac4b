package schema

// UsersUserTable represents the 'users' table
type UsersUserTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// UsersUser is the schema definition for users
var UsersUser = UsersUserTable{
	Table:        "users",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	PasswordHash: "password_hash",
	Address:      "address",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
