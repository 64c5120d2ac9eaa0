package approval

import (
	"context"
	"testing"

	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainIDs(chain []employee.Employee) []string {
	ids := make([]string, len(chain))
	for i, e := range chain {
		ids[i] = e.ID
	}
	return ids
}

func TestChainBuilder_LinearHierarchy(t *testing.T) {
	employees := newFakeEmployeeRepo(
		testEmployee("staff-1", employee.RoleStaff, reportsTo("head-1")),
		testEmployee("head-1", employee.RoleDepartmentHead, reportsTo("mgr-1")),
		testEmployee("mgr-1", employee.RolePropertyManager, reportsTo("admin-1")),
		testEmployee("admin-1", employee.RoleRegionalAdmin),
	)
	builder := NewChainBuilder(employees)

	chain, err := builder.Chain(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"head-1", "mgr-1", "admin-1"}, chainIDs(chain), "nearest manager first, never the employee itself")
}

func TestChainBuilder_NoManager(t *testing.T) {
	employees := newFakeEmployeeRepo(
		testEmployee("admin-1", employee.RoleRegionalAdmin),
	)
	builder := NewChainBuilder(employees)

	chain, err := builder.Chain(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestChainBuilder_CycleTerminates(t *testing.T) {
	// head-1 and mgr-1 report to each other; the walk must stop instead of
	// looping and must not revisit anyone.
	employees := newFakeEmployeeRepo(
		testEmployee("staff-1", employee.RoleStaff, reportsTo("head-1")),
		testEmployee("head-1", employee.RoleDepartmentHead, reportsTo("mgr-1")),
		testEmployee("mgr-1", employee.RolePropertyManager, reportsTo("head-1")),
	)
	builder := NewChainBuilder(employees)

	chain, err := builder.Chain(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"head-1", "mgr-1"}, chainIDs(chain))
}

func TestChainBuilder_SelfReference(t *testing.T) {
	employees := newFakeEmployeeRepo(
		testEmployee("head-1", employee.RoleDepartmentHead, reportsTo("head-1")),
	)
	builder := NewChainBuilder(employees)

	chain, err := builder.Chain(context.Background(), "head-1")
	require.NoError(t, err)
	assert.Empty(t, chain, "an employee never appears in their own chain")
}

func TestChainBuilder_DanglingReferenceEndsChain(t *testing.T) {
	employees := newFakeEmployeeRepo(
		testEmployee("staff-1", employee.RoleStaff, reportsTo("head-1")),
		testEmployee("head-1", employee.RoleDepartmentHead, reportsTo("ghost-1")),
	)
	builder := NewChainBuilder(employees)

	chain, err := builder.Chain(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"head-1"}, chainIDs(chain))
}

func TestChainBuilder_UnknownEmployee(t *testing.T) {
	builder := NewChainBuilder(newFakeEmployeeRepo())

	_, err := builder.Chain(context.Background(), "ghost-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
