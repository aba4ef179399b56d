package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User covers both residents and committee admins. The wider society portal
// (flats, visitors, finances) owns richer profile data; bookings only need
// identity, role and a display label.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	unitNumber   string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName, unitNumber string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		unitNumber:   strings.TrimSpace(unitNumber),
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) UnitNumber() string    { return u.unitNumber }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) DisplayLabel() string {
	return DisplayLabel(u.firstName, u.lastName, u.unitNumber)
}

// DisplayLabel is the name shown against a booked slot: "First Last",
// falling back to the unit number when the profile has no name.
func DisplayLabel(firstName, lastName, unitNumber string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name != "" {
		return name
	}
	return strings.TrimSpace(unitNumber)
}
