package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:        "users",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	Role:         "role",
	CreatedAt:    "createdat",
}
