package domain

// BindingRedirect maps every older version of an assembly to one version.
type BindingRedirect struct {
	Name           string
	PublicKeyToken string
	Culture        string

	// NewVersion is the assembly version callers are redirected to.
	NewVersion string
}

// NewBindingRedirect builds the redirect for a resolved identity.
func NewBindingRedirect(name string, id Identity) BindingRedirect {
	culture := id.Culture
	if culture == "" {
		culture = NeutralCulture
	}
	return BindingRedirect{
		Name:           name,
		PublicKeyToken: id.PublicKeyToken,
		Culture:        culture,
		NewVersion:     id.Version,
	}
}

// OldVersion returns the redirected range, "0.0.0.0-<NewVersion>".
func (r BindingRedirect) OldVersion() string {
	return "0.0.0.0-" + r.NewVersion
}
