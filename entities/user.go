package entities

// User is a registered account. Only the bcrypt digest of the password is
// ever stored; the json tag keeps it out of every response.
type User struct {
	ID           string `bson:"_id,omitempty" json:"userId"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password" json:"-"`
}
