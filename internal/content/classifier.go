// Package content derives the headliner/short/full representations of a post
// from raw submitted text.
package content

import "glimpse/internal/models"

// Mode names the content tier a piece of text falls into.
type Mode string

const (
	ModeHeadliner Mode = "HEADLINER"
	ModeShort     Mode = "SHORT"
	ModeFull      Mode = "FULL"
)

const (
	// MaxHeadliner is the headliner length cap in bytes.
	MaxHeadliner = 50
	// MaxShort is the short-content length cap in bytes.
	MaxShort = 280
	// MaxContent is the overall submitted content cap in bytes.
	MaxContent = 5000
)

// Overrides are caller-supplied replacements for the derived prefix fields.
// They only apply in tiers where the field would otherwise be truncated.
type Overrides struct {
	Headliner    string
	ShortContent string
}

// Derived holds the three persisted representations of a post's content.
type Derived struct {
	Headliner    string
	ShortContent string
	FullContent  *string
}

// Mode reports the tier the derived fields represent.
func (d Derived) Mode() Mode {
	switch {
	case d.FullContent != nil:
		return ModeFull
	case d.ShortContent != "":
		return ModeShort
	default:
		return ModeHeadliner
	}
}

// Classify maps raw text onto the three content tiers. Boundaries are
// inclusive lower-tier: exactly 50 bytes is a headliner, exactly 280 bytes is
// short content. Truncation is a plain byte prefix, not word-boundary aware.
// Posts, comments and quotes all classify identically.
func Classify(raw string, o Overrides) (Derived, error) {
	if raw == "" {
		return Derived{}, models.NewValidationError("Content is required")
	}
	if len(raw) > MaxContent {
		return Derived{}, models.NewValidationError("Content must be less than 5000 characters")
	}
	if len(o.Headliner) > MaxHeadliner {
		return Derived{}, models.NewValidationError("Headliner must be less than 50 characters")
	}
	if o.ShortContent != "" && (len(o.ShortContent) < MaxHeadliner || len(o.ShortContent) > MaxShort) {
		return Derived{}, models.NewValidationError("Short content must be between 50 and 280 characters")
	}

	switch {
	case len(raw) <= MaxHeadliner:
		return Derived{Headliner: raw}, nil
	case len(raw) <= MaxShort:
		return Derived{
			Headliner:    fallback(o.Headliner, raw[:MaxHeadliner]),
			ShortContent: raw,
		}, nil
	default:
		full := raw
		return Derived{
			Headliner:    fallback(o.Headliner, raw[:MaxHeadliner]),
			ShortContent: fallback(o.ShortContent, raw[:MaxShort]),
			FullContent:  &full,
		}, nil
	}
}

func fallback(override, derived string) string {
	if override != "" {
		return override
	}
	return derived
}
