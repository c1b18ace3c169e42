package ports

import "context"

// FeatureFlags is the contract for feature flag evaluation.
// The application checks enablement without knowing the provider;
// the default deployment uses config-backed StaticFlags.
//
// Always pass a default so evaluation degrades gracefully.
type FeatureFlags interface {
	// IsEnabled checks a boolean flag.
	// Returns defaultValue if the flag is not defined.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool

	// GetString retrieves a string flag value.
	// Returns defaultValue if the flag is not defined.
	GetString(ctx context.Context, flag string, defaultValue string) string
}

// Flag names used by the application.
const (
	// FlagSortMostLiked gates the like-count ordering for quote listings.
	// While off, requests asking for "most-liked" fall back to newest-first.
	FlagSortMostLiked = "sort.most_liked"
)

// StaticFlags is a FeatureFlags implementation backed by a fixed map,
// typically loaded from configuration at startup. Lookups are read-only
// after construction, so no locking is needed.
type StaticFlags struct {
	bools   map[string]bool
	strings map[string]string
}

// NewStaticFlags creates a static flag provider. Either map may be nil.
func NewStaticFlags(bools map[string]bool, strings map[string]string) *StaticFlags {
	return &StaticFlags{bools: bools, strings: strings}
}

// IsEnabled implements FeatureFlags.
func (f *StaticFlags) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if v, ok := f.bools[flag]; ok {
		return v
	}

	return defaultValue
}

// GetString implements FeatureFlags.
func (f *StaticFlags) GetString(_ context.Context, flag string, defaultValue string) string {
	if v, ok := f.strings[flag]; ok {
		return v
	}

	return defaultValue
}
