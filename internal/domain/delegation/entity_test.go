package delegation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScopeType_MoreSpecificThan(t *testing.T) {
	assert.True(t, ScopeProperty.MoreSpecificThan(ScopeDepartment))
	assert.True(t, ScopeProperty.MoreSpecificThan(ScopeAll))
	assert.True(t, ScopeDepartment.MoreSpecificThan(ScopeAll))

	assert.False(t, ScopeAll.MoreSpecificThan(ScopeProperty))
	assert.False(t, ScopeProperty.MoreSpecificThan(ScopeProperty))
	assert.False(t, ScopeType("region").MoreSpecificThan(ScopeAll))
}

func TestTemporaryDelegation_ActiveAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC)
	d := TemporaryDelegation{StartAt: start, EndAt: end}

	assert.True(t, d.ActiveAt(start), "window start is inclusive")
	assert.True(t, d.ActiveAt(end), "window end is inclusive")
	assert.True(t, d.ActiveAt(start.AddDate(0, 0, 7)))

	assert.False(t, d.ActiveAt(start.Add(-time.Second)))
	assert.False(t, d.ActiveAt(end.Add(time.Second)))
}

func TestCreateDelegationRequest_Validate(t *testing.T) {
	propertyID := "prop-1"
	valid := CreateDelegationRequest{
		DelegatorID: "emp-1",
		DelegateID:  "emp-2",
		ScopeType:   "property",
		ScopeID:     &propertyID,
		StartAt:     "2025-06-01T00:00:00Z",
		EndAt:       "2025-06-14T00:00:00Z",
	}
	assert.NoError(t, valid.Validate())

	t.Run("all scope needs no scope_id", func(t *testing.T) {
		req := valid
		req.ScopeType = "all"
		req.ScopeID = nil
		assert.NoError(t, req.Validate())
	})

	t.Run("scoped delegation requires scope_id", func(t *testing.T) {
		req := valid
		req.ScopeID = nil
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "scope_id")
	})

	t.Run("end must be after start", func(t *testing.T) {
		req := valid
		req.EndAt = "2025-05-01T00:00:00Z"
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end_at")
	})

	t.Run("bad timestamps", func(t *testing.T) {
		req := valid
		req.StartAt = "2025-06-01"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown scope type", func(t *testing.T) {
		req := valid
		req.ScopeType = "region"
		assert.Error(t, req.Validate())
	})
}

func TestCreateDelegationRequest_ToEntity(t *testing.T) {
	req := CreateDelegationRequest{
		DelegatorID: "emp-1",
		DelegateID:  "emp-2",
		ScopeType:   "all",
		StartAt:     "2025-06-01T00:00:00Z",
		EndAt:       "2025-06-14T00:00:00Z",
	}
	d := req.ToEntity()
	assert.Equal(t, "emp-1", d.DelegatorID)
	assert.Equal(t, "emp-2", d.DelegateID)
	assert.Equal(t, ScopeAll, d.ScopeType)
	assert.Nil(t, d.ScopeID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d.StartAt)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), d.EndAt)
}
