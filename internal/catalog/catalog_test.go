package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ReferenceDataset(t *testing.T) {
	recs := All()

	require.Len(t, recs, 11)
	assert.Equal(t, Record{ID: 1, Title: "Apple Pie Recipe", Content: "A delicious apple pie with a flaky crust."}, recs[0])
	assert.Equal(t, "Tiramisu Classic", recs[10].Title)
	assert.Equal(t, "Italian Tiramisu with espresso and mascarpone.", recs[10].Content)

	for i, r := range recs {
		assert.Equal(t, i+1, r.ID, "ids follow dataset order")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"

	second := All()
	assert.Equal(t, "Apple Pie Recipe", second[0].Title)
	assert.Len(t, second, 11)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantLen int
	}{
		{
			name:    "valid",
			data:    "records:\n  - id: 2\n    title: b\n    content: c\n  - id: 1\n    title: a\n    content: d\n",
			wantLen: 2,
		},
		{
			name:    "empty",
			data:    "records: []\n",
			wantErr: ErrNoRecords,
		},
		{
			name:    "duplicate id",
			data:    "records:\n  - id: 1\n    title: a\n  - id: 1\n    title: b\n",
			wantErr: ErrDuplicateID,
		},
		{
			name:    "zero id",
			data:    "records:\n  - id: 0\n    title: a\n",
			wantErr: ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Decode([]byte("records: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing record fixture")
	})

	t.Run("preserves document order", func(t *testing.T) {
		got, err := Decode([]byte("records:\n  - id: 9\n    title: z\n  - id: 3\n    title: y\n"))
		require.NoError(t, err)
		assert.Equal(t, 9, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})
}
