package parking

type ParkingType string

const (
	TypeEmployee ParkingType = "employee"
	TypeVisitor  ParkingType = "visitor"
)

func (t ParkingType) String() string {
	return string(t)
}

func (t ParkingType) IsValid() bool {
	switch t {
	case TypeEmployee, TypeVisitor:
		return true
	default:
		return false
	}
}
