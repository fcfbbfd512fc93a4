package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExtract(t *testing.T, source string) Record {
	t.Helper()
	tree, err := Parse([]byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return tree.Extract()
}

func TestExtractPackage(t *testing.T) {
	source := `
[package]
name = "package_test"
version = "0.4.3"
edition = "2021"
`
	rec := mustExtract(t, source)

	require.NotNil(t, rec.Package)
	assert.Equal(t, "package_test", rec.Package.Name)
	assert.Equal(t, "0.4.3", rec.Package.Version)
	assert.Contains(t, rec.Package.NamePair, "name")
	assert.Contains(t, rec.Package.VersionPair, "version")
	assert.Equal(t, 1, rec.Count())

	// The value span must address exactly the quoted literal.
	span := rec.Package.ValueSpan
	assert.Equal(t, `"0.4.3"`, source[span.Start:span.End])
	assert.Contains(t, rec.Package.VersionPair, source[span.Start:span.End])
}

func TestExtractPackageMissingVersion(t *testing.T) {
	rec := mustExtract(t, `
[package]
name = "package_test"
edition = "2021"
`)
	assert.Nil(t, rec.Package)
	assert.Equal(t, 0, rec.Count())
}

func TestExtractPackageMissingName(t *testing.T) {
	rec := mustExtract(t, `
[package]
version = "0.4.3"
edition = "2021"
`)
	assert.Nil(t, rec.Package)
}

func TestExtractPackageIgnoresExtraKeys(t *testing.T) {
	rec := mustExtract(t, `
[package]
name = "another_package"
version = "1.2.3"
description = "An example package"
authors = ["Alice", "Bob"]
`)
	require.NotNil(t, rec.Package)
	assert.Equal(t, "another_package", rec.Package.Name)
	assert.Equal(t, "1.2.3", rec.Package.Version)
}

func TestFirstPackageTableWins(t *testing.T) {
	rec := mustExtract(t, `
[package]
name = "first"
version = "0.1.0"

[package]
name = "second"
version = "0.2.0"
`)
	require.NotNil(t, rec.Package)
	assert.Equal(t, "first", rec.Package.Name)
}

func TestExtractDeps(t *testing.T) {
	source := `
[package]
name = "package_test1"
version = "0.4.3"

[dependencies]
package_test2 = { version = "0.4.3", path = "package_test2" }
`
	rec := mustExtract(t, source)

	require.NotNil(t, rec.Package)
	require.Len(t, rec.Deps, 1)
	dep := rec.Deps[0]
	assert.Equal(t, "package_test2", dep.Name)
	assert.Equal(t, "0.4.3", dep.Version)
	assert.Contains(t, dep.NamePair, "package_test2")
	assert.Contains(t, dep.VersionPair, "version")
	assert.Equal(t, `"0.4.3"`, source[dep.ValueSpan.Start:dep.ValueSpan.End])
	assert.Equal(t, 2, rec.Count())
}

func TestExtractDepsSourceOrder(t *testing.T) {
	rec := mustExtract(t, `
[dependencies]
zeta = { version = "1.0.0" }
alpha = { version = "2.0.0" }
mid = { version = "3.0.0" }
`)
	require.Len(t, rec.Deps, 3)
	assert.Equal(t, "zeta", rec.Deps[0].Name)
	assert.Equal(t, "alpha", rec.Deps[1].Name)
	assert.Equal(t, "mid", rec.Deps[2].Name)
}

func TestBareStringDepNotExtracted(t *testing.T) {
	rec := mustExtract(t, `
[dependencies]
package_test = "0.4.3"
`)
	assert.Empty(t, rec.Deps)
}

func TestInlineTableWithoutVersionNotExtracted(t *testing.T) {
	rec := mustExtract(t, `
[dependencies]
package_test = { path = "package_test" }
`)
	assert.Empty(t, rec.Deps)
}

func TestExtractNoTables(t *testing.T) {
	rec := mustExtract(t, `key = "value"`)
	assert.Nil(t, rec.Package)
	assert.Empty(t, rec.Deps)
}

func TestExtractIdempotent(t *testing.T) {
	source := `
[package]
name = "core"
version = "0.1.0"

[dependencies]
util = { version = "0.1.0", path = "../util" }
serde = { version = "1.0.200", features = ["derive"] }
`
	first := mustExtract(t, source)
	second := mustExtract(t, source)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-extraction of unchanged source differs (-first +second):\n%s", diff)
	}
}
