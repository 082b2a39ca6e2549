package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rebind/internal/core/domain"
)

func TestPackageVersion_ResolutionState(t *testing.T) {
	p := domain.NewPackageVersion("Newtonsoft.Json", "13.0.1")
	assert.Equal(t, domain.Unresolved, p.State())

	p.Resolve(domain.Identity{Version: "13.0.0.0", PublicKeyToken: "30ad4fe6b2a6aeed"})

	id, ok := p.Identity()
	assert.True(t, ok)
	assert.Equal(t, domain.Resolved, p.State())
	assert.Equal(t, "13.0.0.0", id.Version)
	assert.Equal(t, domain.NeutralCulture, id.Culture)

	p.MarkUnresolvable()
	_, ok = p.Identity()
	assert.False(t, ok)
	assert.Equal(t, "unresolvable", p.State().String())
}

func TestPackageVersion_SetVersionResetsResolution(t *testing.T) {
	p := domain.NewPackageVersion("A", "1.0")
	p.Resolve(domain.Identity{Version: "1.0.0.0"})

	p.SetVersion("1.0")
	assert.Equal(t, domain.Resolved, p.State())

	p.SetVersion("2.0")
	assert.Equal(t, domain.Unresolved, p.State())
	assert.Equal(t, domain.PackageKey{Name: "A", Version: "2.0"}, p.Key())
}

func TestReport_SkipDeduplicates(t *testing.T) {
	var r domain.Report

	r.Skip(domain.PackageKey{Name: "B", Version: "1.0"})
	r.Skip(domain.PackageKey{Name: "A", Version: "2.0"})
	r.Skip(domain.PackageKey{Name: "b", Version: "1.0"})
	r.Sort()

	assert.Equal(t, []domain.PackageKey{
		{Name: "A", Version: "2.0"},
		{Name: "B", Version: "1.0"},
	}, r.Skipped)
}

func TestParseMode(t *testing.T) {
	m, err := domain.ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeAligned, m)

	m, err = domain.ParseMode("Explicit")
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeExplicit, m)

	_, err = domain.ParseMode("loose")
	assert.ErrorContains(t, err, "invalid reconciliation mode")
}

func TestBindingRedirect(t *testing.T) {
	r := domain.NewBindingRedirect("Newtonsoft.Json", domain.Identity{
		Version:        "13.0.0.0",
		PublicKeyToken: "30ad4fe6b2a6aeed",
	})

	assert.Equal(t, "neutral", r.Culture)
	assert.Equal(t, "0.0.0.0-13.0.0.0", r.OldVersion())
}
