package tgbot

type UserRole int

const (
	RoleAdmin UserRole = 1
	RoleUser  UserRole = 2
)

type User struct {
	ID        int64
	ChatID    int64
	FirstName string
	Username  string
	Role      UserRole
}
