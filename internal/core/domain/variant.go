package domain

import "fmt"

// Variant identifies one of the parallel packtrak apps. Both share the same
// offline queue and sync machinery and differ only in storage namespace and
// API path prefix.
type Variant struct {
	// Name is the user-facing variant name ("tracking" or "scanpak").
	Name string

	// Namespace isolates the variant's rows in the shared queue store.
	Namespace string

	// PathPrefix is prepended to remote API paths for this variant.
	PathPrefix string
}

var (
	// VariantTracking is the parcel tracking app.
	VariantTracking = Variant{
		Name:       "tracking",
		Namespace:  "tracking_pending",
		PathPrefix: "/tracking",
	}

	// VariantScanPak is the ScanPak scanning app.
	VariantScanPak = Variant{
		Name:       "scanpak",
		Namespace:  "scanpak_pending",
		PathPrefix: "/scanpak",
	}
)

// Variants returns all registered app variants.
func Variants() []Variant {
	return []Variant{VariantTracking, VariantScanPak}
}

// VariantByName resolves a variant from its user-facing name.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
