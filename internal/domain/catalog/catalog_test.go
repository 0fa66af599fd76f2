package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IDs are assigned in the BeforeCreate hooks; no database-side generation is
// involved.
func TestBeforeCreateAssignsUUID(t *testing.T) {
	o := Owner{}
	require.NoError(t, o.BeforeCreate(nil))
	_, err := uuid.Parse(o.ID)
	assert.NoError(t, err)

	p := Property{}
	require.NoError(t, p.BeforeCreate(nil))
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err)

	img := PropertyImage{}
	require.NoError(t, img.BeforeCreate(nil))
	_, err = uuid.Parse(img.ID)
	assert.NoError(t, err)

	tr := PropertyTrace{}
	require.NoError(t, tr.BeforeCreate(nil))
	_, err = uuid.Parse(tr.ID)
	assert.NoError(t, err)
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	o := Owner{ID: "o-fixed"}
	require.NoError(t, o.BeforeCreate(nil))
	assert.Equal(t, "o-fixed", o.ID)
}
