package floorplan

type PlanType string

const (
	PlanTypeDeskArea  PlanType = "desk_area"
	PlanTypeCafeteria PlanType = "cafeteria"
	PlanTypeParking   PlanType = "parking"
)

func (p PlanType) String() string {
	return string(p)
}

func (p PlanType) IsValid() bool {
	switch p {
	case PlanTypeDeskArea, PlanTypeCafeteria, PlanTypeParking:
		return true
	default:
		return false
	}
}

func NewPlanType(s string) (PlanType, error) {
	pt := PlanType(s)
	if !pt.IsValid() {
		return "", ErrInvalidPlanType
	}
	return pt, nil
}

type CellType string

const (
	CellTypeDesk           CellType = "desk"
	CellTypeConferenceRoom CellType = "conference_room"
	CellTypeCafeteriaTable CellType = "cafeteria_table"
	CellTypeParkingSlot    CellType = "parking_slot"
	CellTypePath           CellType = "path"
	CellTypeWall           CellType = "wall"
	CellTypeWindow         CellType = "window"
	CellTypeEntry          CellType = "entry"
	CellTypeExit           CellType = "exit"
	CellTypeEmpty          CellType = "empty"
)

func (c CellType) String() string {
	return string(c)
}

// structuralCellTypes are valid on every plan type.
var structuralCellTypes = []CellType{
	CellTypePath, CellTypeWall, CellTypeWindow, CellTypeEntry, CellTypeExit, CellTypeEmpty,
}

// resourceCellTypes are the bookable kinds each plan type may contain.
var resourceCellTypes = map[PlanType][]CellType{
	PlanTypeDeskArea:  {CellTypeDesk, CellTypeConferenceRoom},
	PlanTypeCafeteria: {CellTypeCafeteriaTable},
	PlanTypeParking:   {CellTypeParkingSlot},
}

// AllowedCellTypes returns the full set of cell types a plan of the given
// type may contain.
func AllowedCellTypes(planType PlanType) []CellType {
	allowed := make([]CellType, 0, len(structuralCellTypes)+2)
	allowed = append(allowed, resourceCellTypes[planType]...)
	allowed = append(allowed, structuralCellTypes...)
	return allowed
}

// ResourceCellTypes returns the bookable cell types for a plan of the given
// type.
func ResourceCellTypes(planType PlanType) []CellType {
	return resourceCellTypes[planType]
}

// IsResourceCellType reports whether cellType is bookable on a plan of
// planType, as opposed to structural layout like walls and paths.
func IsResourceCellType(planType PlanType, cellType CellType) bool {
	for _, ct := range resourceCellTypes[planType] {
		if ct == cellType {
			return true
		}
	}
	return false
}

// CellTypeAllowed reports whether cellType may appear on a plan of planType.
func CellTypeAllowed(planType PlanType, cellType CellType) bool {
	for _, ct := range resourceCellTypes[planType] {
		if ct == cellType {
			return true
		}
	}
	for _, ct := range structuralCellTypes {
		if ct == cellType {
			return true
		}
	}
	return false
}

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionMulti Direction = "multi"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight, DirectionMulti:
		return true
	default:
		return false
	}
}
