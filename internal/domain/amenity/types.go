package amenity

type Type string

const (
	TypeSwimmingPool Type = "swimming_pool"
	TypePoolTable    Type = "pool_table"
	TypePartyHall    Type = "party_hall"
	TypeGuestParking Type = "guest_parking"
	TypeGym          Type = "gym"
	TypeOther        Type = "other"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSwimmingPool, TypePoolTable, TypePartyHall, TypeGuestParking, TypeGym, TypeOther:
		return true
	default:
		return false
	}
}

// FullDay reports whether bookings for this type always span the whole
// calendar day regardless of the slot label the resident picked.
func (t Type) FullDay() bool {
	return t == TypePartyHall || t == TypeGuestParking
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
