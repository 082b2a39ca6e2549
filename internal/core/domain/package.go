package domain

import "strings"

// NeutralCulture is the culture of assemblies that carry no culture.
const NeutralCulture = "neutral"

// Identity is the strong-name identity of a released assembly.
type Identity struct {
	// Version is the four-part assembly version (e.g. "13.0.0.0").
	Version string

	// PublicKeyToken is the lowercase hex token, empty for unsigned assemblies.
	PublicKeyToken string

	// Culture is the assembly culture, "neutral" when unset.
	Culture string
}

// PackageKey identifies one release of a package.
type PackageKey struct {
	Name    string
	Version string
}

// String renders the key as "name@version".
func (k PackageKey) String() string {
	return k.Name + "@" + k.Version
}

// Normalized returns the key with a lowercased name. Package names are
// case-insensitive.
func (k PackageKey) Normalized() PackageKey {
	return PackageKey{Name: strings.ToLower(k.Name), Version: k.Version}
}

// PackageRef is a package release found on disk by the registry client.
type PackageRef struct {
	PackageKey

	// Dir is the directory the package was extracted to.
	Dir string
}

// ResolutionState is the lifecycle of a package version's identity lookup.
type ResolutionState int

const (
	// Unresolved means no lookup has completed yet.
	Unresolved ResolutionState = iota
	// Resolved means an identity was found.
	Resolved
	// Unresolvable means the lookup completed without an identity.
	Unresolvable
)

// String returns the lowercase state name.
func (s ResolutionState) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Unresolvable:
		return "unresolvable"
	default:
		return "unresolved"
	}
}

// PackageVersion is the reconciled record of one dependency within a scope
// (a project or the whole workspace).
type PackageVersion struct {
	Name    string
	Version string
	Range   *VersionRange

	state    ResolutionState
	identity Identity
}

// NewPackageVersion creates an unresolved record.
func NewPackageVersion(name, version string) *PackageVersion {
	return &PackageVersion{Name: name, Version: version}
}

// Key returns the (name, version) pair of the record.
func (p *PackageVersion) Key() PackageKey {
	return PackageKey{Name: p.Name, Version: p.Version}
}

// State returns the resolution state.
func (p *PackageVersion) State() ResolutionState {
	return p.state
}

// Identity returns the resolved identity and whether the record is resolved.
func (p *PackageVersion) Identity() (Identity, bool) {
	return p.identity, p.state == Resolved
}

// Resolve records an identity. A missing culture becomes neutral.
func (p *PackageVersion) Resolve(id Identity) {
	if id.Culture == "" {
		id.Culture = NeutralCulture
	}
	p.identity = id
	p.state = Resolved
}

// MarkUnresolvable records that no identity could be found.
func (p *PackageVersion) MarkUnresolvable() {
	p.identity = Identity{}
	p.state = Unresolvable
}

// SetVersion replaces the version. Any previous resolution no longer applies.
func (p *PackageVersion) SetVersion(version string) {
	if p.Version == version {
		return
	}
	p.Version = version
	p.identity = Identity{}
	p.state = Unresolved
}
