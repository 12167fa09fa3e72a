package content

import (
	"strings"
	"testing"

	"glimpse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		raw           string
		wantHeadliner string
		wantShort     string
		wantFull      bool
		wantMode      Mode
	}{
		{
			name:          "tiny text is headliner only",
			raw:           "Hi",
			wantHeadliner: "Hi",
			wantShort:     "",
			wantMode:      ModeHeadliner,
		},
		{
			name:          "exactly 50 stays headliner",
			raw:           strings.Repeat("a", 50),
			wantHeadliner: strings.Repeat("a", 50),
			wantShort:     "",
			wantMode:      ModeHeadliner,
		},
		{
			name:          "51 chars becomes short content",
			raw:           strings.Repeat("b", 51),
			wantHeadliner: strings.Repeat("b", 50),
			wantShort:     strings.Repeat("b", 51),
			wantMode:      ModeShort,
		},
		{
			name:          "100 chars keeps full text as short content",
			raw:           strings.Repeat("c", 100),
			wantHeadliner: strings.Repeat("c", 50),
			wantShort:     strings.Repeat("c", 100),
			wantMode:      ModeShort,
		},
		{
			name:          "exactly 280 stays short",
			raw:           strings.Repeat("d", 280),
			wantHeadliner: strings.Repeat("d", 50),
			wantShort:     strings.Repeat("d", 280),
			wantMode:      ModeShort,
		},
		{
			name:          "281 chars becomes full content",
			raw:           strings.Repeat("e", 281),
			wantHeadliner: strings.Repeat("e", 50),
			wantShort:     strings.Repeat("e", 280),
			wantFull:      true,
			wantMode:      ModeFull,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := Classify(tc.raw, Overrides{})
			require.NoError(t, err)
			assert.Equal(t, tc.wantHeadliner, d.Headliner)
			assert.Equal(t, tc.wantShort, d.ShortContent)
			if tc.wantFull {
				require.NotNil(t, d.FullContent)
				assert.Equal(t, tc.raw, *d.FullContent)
			} else {
				assert.Nil(t, d.FullContent)
			}
			assert.Equal(t, tc.wantMode, d.Mode())
		})
	}
}

func TestClassifyOverrides(t *testing.T) {
	t.Parallel()

	t.Run("headliner override applies above the headliner tier", func(t *testing.T) {
		t.Parallel()
		d, err := Classify(strings.Repeat("x", 100), Overrides{Headliner: "My title"})
		require.NoError(t, err)
		assert.Equal(t, "My title", d.Headliner)
		assert.Equal(t, strings.Repeat("x", 100), d.ShortContent)
	})

	t.Run("short override applies in the full tier", func(t *testing.T) {
		t.Parallel()
		short := strings.Repeat("s", 120)
		d, err := Classify(strings.Repeat("x", 300), Overrides{ShortContent: short})
		require.NoError(t, err)
		assert.Equal(t, short, d.ShortContent)
		require.NotNil(t, d.FullContent)
	})

	t.Run("headliner override ignored in the headliner tier", func(t *testing.T) {
		t.Parallel()
		d, err := Classify("short", Overrides{Headliner: "other"})
		require.NoError(t, err)
		assert.Equal(t, "short", d.Headliner)
	})
}

func TestClassifyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		o    Overrides
	}{
		{"empty content", "", Overrides{}},
		{"content over 5000", strings.Repeat("x", 5001), Overrides{}},
		{"headliner override over 50", "hello world, somewhat longer than fifty characters here", Overrides{Headliner: strings.Repeat("h", 51)}},
		{"short override under 50", strings.Repeat("x", 300), Overrides{ShortContent: "too short"}},
		{"short override over 280", strings.Repeat("x", 300), Overrides{ShortContent: strings.Repeat("s", 281)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Classify(tc.raw, tc.o)
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}

func TestClassifyBoundaryIs5000Inclusive(t *testing.T) {
	t.Parallel()
	_, err := Classify(strings.Repeat("x", 5000), Overrides{})
	assert.NoError(t, err)
}
