package onboarding

import (
	"testing"

	"reel-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
		want Checklist
	}{
		{
			name: "no snapshot",
			snap: nil,
			want: Checklist{},
		},
		{
			name: "snapshot without profile",
			snap: &Snapshot{},
			want: Checklist{ExtensionInstalled: true},
		},
		{
			name: "empty bio",
			snap: &Snapshot{Profile: &models.Profile{Bio: ""}},
			want: Checklist{ExtensionInstalled: true},
		},
		{
			name: "bio present",
			snap: &Snapshot{Profile: &models.Profile{Bio: "PM intern"}},
			want: Checklist{ExtensionInstalled: true, BioComplete: true},
		},
		{
			name: "marker without bio does not count",
			snap: &Snapshot{Profile: &models.Profile{}, FirstMessageSent: true},
			want: Checklist{ExtensionInstalled: true},
		},
		{
			name: "marker with bio",
			snap: &Snapshot{Profile: &models.Profile{Bio: "PM intern"}, FirstMessageSent: true},
			want: Checklist{ExtensionInstalled: true, BioComplete: true, FirstMessageSent: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(tc.snap))
		})
	}
}

func TestCompute_ClearingBioResetsProgress(t *testing.T) {
	s := NewSnapshot(&models.Profile{Bio: "PM intern", FirstMessageSent: true})
	assert.Equal(t, Checklist{true, true, true}, Compute(&s))

	cleared := s.WithProfile(&models.Profile{Bio: "", FirstMessageSent: true})
	assert.Equal(t, Checklist{ExtensionInstalled: true}, Compute(&cleared))
}

func TestSnapshot_WithersDoNotMutate(t *testing.T) {
	original := NewSnapshot(&models.Profile{Bio: "a"})

	marked := original.WithFirstMessageSent()
	replaced := original.WithProfile(&models.Profile{Bio: "b"})

	assert.False(t, original.FirstMessageSent)
	assert.Equal(t, "a", original.Profile.Bio)
	assert.True(t, marked.FirstMessageSent)
	assert.Equal(t, "b", replaced.Profile.Bio)
}

func TestNewSnapshot_CopiesMarker(t *testing.T) {
	assert.True(t, NewSnapshot(&models.Profile{FirstMessageSent: true}).FirstMessageSent)
	assert.False(t, NewSnapshot(nil).FirstMessageSent)
}
