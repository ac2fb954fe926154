package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatchClaimStatusValidStatus(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.True(t, PatchClaimStatusRequest{}.ValidStatus(), "nil status is a no-op, not an error")
	for _, v := range []string{"pending", "approved", "rejected", "incomplete"} {
		assert.True(t, PatchClaimStatusRequest{Status: s(v)}.ValidStatus(), v)
	}
	for _, v := range []string{"APPROVED", "done", "cancelled", "", " pending"} {
		assert.False(t, PatchClaimStatusRequest{Status: s(v)}.ValidStatus(), v)
	}
}

func TestPatchClaimStatusHasChanges(t *testing.T) {
	s := "approved"
	note := ""

	assert.False(t, PatchClaimStatusRequest{}.HasChanges())
	assert.False(t, PatchClaimStatusRequest{RowVersion: new(int64)}.HasChanges(),
		"row_version alone is a guard, not a change")
	assert.True(t, PatchClaimStatusRequest{Status: &s}.HasChanges())
	assert.True(t, PatchClaimStatusRequest{AdminNote: &note}.HasChanges(),
		"an explicit empty note still counts as a change")
}

func TestPatchClaimStatusToUpdates(t *testing.T) {
	t.Run("omitted fields stay out of the column map", func(t *testing.T) {
		s := "incomplete"
		updates := PatchClaimStatusRequest{Status: &s}.ToUpdates()

		assert.Equal(t, "incomplete", updates["status"])
		assert.Contains(t, updates, "updated_at")
		assert.Contains(t, updates, "row_version")
		assert.NotContains(t, updates, "admin_note")
		assert.NotContains(t, updates, "approved_by")
		assert.NotContains(t, updates, "approved_at")
	})

	t.Run("all fields provided", func(t *testing.T) {
		s, note := "approved", "looks good"
		by := uuid.New()
		at := time.Now()
		updates := PatchClaimStatusRequest{
			Status: &s, AdminNote: &note, ApprovedBy: &by, ApprovedAt: &at,
		}.ToUpdates()

		assert.Equal(t, "approved", updates["status"])
		assert.Equal(t, "looks good", updates["admin_note"])
		assert.Equal(t, by, updates["approved_by"])
		assert.Equal(t, at, updates["approved_at"])
		assert.Len(t, updates, 6)
	})
}
