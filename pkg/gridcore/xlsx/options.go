// Package xlsx imports and exports documents as Excel workbooks.
package xlsx

// Options configures import and export.
type Options struct {
	// KeepFormulas stores "=" prefixed formula text instead of the cached
	// value on import, and writes such values back as formulas on export.
	// If nil, defaults to false on import and true on export.
	KeepFormulas *bool
	// IncludeLayout writes row height and column width overrides on export.
	// If nil, defaults to true.
	IncludeLayout *bool
	// RawValues imports unformatted cell values.
	RawValues bool
}

// DefaultOptions returns default import/export options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldKeepFormulasOnImport returns whether formulas replace cached values on import.
func (o Options) ShouldKeepFormulasOnImport() bool {
	if o.KeepFormulas != nil {
		return *o.KeepFormulas
	}
	return false
}

// ShouldWriteFormulas returns whether formula-looking values are exported as formulas.
func (o Options) ShouldWriteFormulas() bool {
	if o.KeepFormulas != nil {
		return *o.KeepFormulas
	}
	return true
}

// ShouldIncludeLayout returns whether size overrides are exported.
func (o Options) ShouldIncludeLayout() bool {
	if o.IncludeLayout != nil {
		return *o.IncludeLayout
	}
	return true
}
