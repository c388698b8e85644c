package port

import "context"

// SystemFontDetector reports which font families are installed locally.
// It is used to warn about system-font entries that will not render here.
type SystemFontDetector interface {
	// GetAvailableFonts returns a list of font family names installed on the system.
	// Returns an error if font detection is not available (e.g., fc-list missing).
	GetAvailableFonts(ctx context.Context) ([]string, error)

	// IsInstalled reports whether family (or a generic CSS family) can be rendered.
	IsInstalled(ctx context.Context, family string) bool

	// IsAvailable returns true if font detection is available on this system.
	IsAvailable(ctx context.Context) bool
}
