package csvimport

import (
	"errors"
	"fmt"
	"strings"
)

// SourceType identifies which column-mapping rules apply to an upload.
type SourceType string

const (
	// SourceStorefrontExport is a hosted-storefront product export.
	SourceStorefrontExport SourceType = "storefront_export"
	// SourcePartnerhubTemplate is the portal's own downloadable template.
	SourcePartnerhubTemplate SourceType = "partnerhub_template"
)

// ErrUnknownSource is matched by every UnknownSourceError.
var ErrUnknownSource = errors.New("unknown source type")

// UnknownSourceError reports a source type with no registered adapter.
type UnknownSourceError struct {
	Requested SourceType
	Supported []SourceType
}

func (e *UnknownSourceError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, source := range e.Supported {
		names = append(names, string(source))
	}
	return fmt.Sprintf("unknown source type %q (supported: %s)", e.Requested, strings.Join(names, ", "))
}

// Is makes errors.Is(err, ErrUnknownSource) hold.
func (e *UnknownSourceError) Is(target error) bool {
	return target == ErrUnknownSource
}

// Adapter maps one tokenized row to an Outcome. Adapters are pure.
type Adapter func(Row) Outcome

// Resolve returns the adapter registered for source. The set is fixed at
// build time; callers cannot supply their own column mappings.
func Resolve(source SourceType) (Adapter, error) {
	switch source {
	case SourceStorefrontExport:
		return normalizeStorefrontExport, nil
	case SourcePartnerhubTemplate:
		return normalizePartnerhubTemplate, nil
	default:
		return nil, &UnknownSourceError{Requested: source, Supported: SupportedSources()}
	}
}

// SupportedSources lists the registered source types in a stable order.
func SupportedSources() []SourceType {
	return []SourceType{SourceStorefrontExport, SourcePartnerhubTemplate}
}

// ParseSourceType normalizes a user-supplied tag. It does not validate it.
func ParseSourceType(raw string) SourceType {
	return SourceType(strings.ToLower(strings.TrimSpace(raw)))
}
