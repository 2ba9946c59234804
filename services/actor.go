package services

import "esuka/models"

// Actor is the authenticated caller of an operation. Handlers resolve it from
// the access token and the current profile row and pass it down explicitly.
type Actor struct {
	ID       uint
	Email    string
	Role     models.Role
	FullName string
	Jabatan  models.Jabatan
}

func ActorFromUser(u models.User) Actor {
	return Actor{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
		Jabatan:  u.Jabatan,
	}
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// Name is what goes into riwayat "from".
func (a Actor) Name() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Email
}
