package employee

import "time"

// Employee is the read-only view of a staff member this service needs for
// approval routing. HR owns the records; nothing here mutates them.
type Employee struct {
	ID           string
	FullName     string
	Email        string
	PropertyID   *string
	DepartmentID *string
	ReportingTo  *string
	Role         *Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the employee currently holds the given role.
func (e Employee) HasRole(role Role) bool {
	return e.Role != nil && *e.Role == role
}

type Role string

const (
	RoleRegionalAdmin   Role = "regional_admin"
	RoleRegionalHR      Role = "regional_hr"
	RolePropertyManager Role = "property_manager"
	RolePropertyHR      Role = "property_hr"
	RoleDepartmentHead  Role = "department_head"
	RoleStaff           Role = "staff"
)

// roleRank orders roles from most to least authority.
var roleRank = map[Role]int{
	RoleRegionalAdmin:   0,
	RoleRegionalHR:      1,
	RolePropertyManager: 2,
	RolePropertyHR:      3,
	RoleDepartmentHead:  4,
	RoleStaff:           5,
}

// IsValid reports whether the role is one of the known system roles.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanApprove reports whether the role carries approval authority.
// Every role above staff does.
func (r Role) CanApprove() bool {
	rank, ok := roleRank[r]
	return ok && rank < roleRank[RoleStaff]
}

// Outranks reports whether r sits above other in the role hierarchy.
func (r Role) Outranks(other Role) bool {
	a, okA := roleRank[r]
	b, okB := roleRank[other]
	return okA && okB && a < b
}
