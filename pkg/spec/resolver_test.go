package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgforge/bootstage/pkg/errors"
	"github.com/imgforge/bootstage/pkg/testutil"
	"github.com/imgforge/bootstage/pkg/types"
)

const artifactRoot = "/artifacts"

func strPtr(s string) *string {
	return &s
}

func TestResolveAbsentSpec(t *testing.T) {
	fsys := testutil.NewTestFS()

	res, err := Resolve(fsys, artifactRoot, nil)
	require.NoError(t, err)
	assert.Equal(t, StateDisabled, res.State())
	assert.False(t, res.Enabled())
	assert.Nil(t, res.Pairs())
}

func TestResolveSingleFile(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/a.txt", "hello")

	res, err := Resolve(fsys, artifactRoot, strPtr("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, StateResolved, res.State())
	assert.Equal(t, []types.Pair{{Source: "a.txt", Dest: "a.txt"}}, res.Pairs())
}

func TestResolveGlobIntoDirectory(t *testing.T) {
	fsys := testutil.NewTestFS()
	// Written in reverse order; matches must come back sorted.
	testutil.WriteFile(t, fsys, "/artifacts/z.bin", "z")
	testutil.WriteFile(t, fsys, "/artifacts/k.bin", "k")

	res, err := Resolve(fsys, artifactRoot, strPtr("*.bin;images/"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "k.bin", Dest: "images/k.bin"},
		{Source: "z.bin", Dest: "images/z.bin"},
	}, res.Pairs())
}

func TestResolveNoMatches(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/present.txt", "x")

	res, err := Resolve(fsys, artifactRoot, strPtr("missing.img"))
	require.NoError(t, err)
	assert.Equal(t, StateNoMatches, res.State())
	assert.True(t, res.Enabled())
	assert.Empty(t, res.Pairs())
}

func TestResolveAmbiguousRename(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/a.bin", "a")
	testutil.WriteFile(t, fsys, "/artifacts/b.bin", "b")

	_, err := Resolve(fsys, artifactRoot, strPtr("*.bin;single.img"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAmbiguousRename))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "*.bin", details["pattern"])
}

func TestResolveRenameSingleMatch(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/u-boot.img", "uboot")

	res, err := Resolve(fsys, artifactRoot, strPtr("u-boot.img;uboot"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{{Source: "u-boot.img", Dest: "uboot"}}, res.Pairs())
}

func TestResolveRenameZeroMatchesIsNotAnError(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/other.txt", "x")

	res, err := Resolve(fsys, artifactRoot, strPtr("missing.img;renamed.img"))
	require.NoError(t, err)
	assert.Equal(t, StateNoMatches, res.State())
}

func TestResolveEntryOrderPreserved(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/a.txt", "a")
	testutil.WriteFile(t, fsys, "/artifacts/b.txt", "b")

	res, err := Resolve(fsys, artifactRoot, strPtr("b.txt a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "b.txt", Dest: "b.txt"},
		{Source: "a.txt", Dest: "a.txt"},
	}, res.Pairs())
}

func TestResolveEmptySpec(t *testing.T) {
	fsys := testutil.NewTestFS()

	res, err := Resolve(fsys, artifactRoot, strPtr("   "))
	require.NoError(t, err)
	// Enabled but nothing to do; not the same as "no matches".
	assert.Equal(t, StateResolved, res.State())
	assert.Empty(t, res.Pairs())
}

func TestResolveNestedPatternPreservesLayout(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/boot/grub/grub.cfg", "cfg")
	testutil.WriteFile(t, fsys, "/artifacts/boot/grub/unicode.pf2", "font")

	res, err := Resolve(fsys, artifactRoot, strPtr("boot/grub/*.cfg"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "boot/grub/grub.cfg", Dest: "boot/grub/grub.cfg"},
	}, res.Pairs())
}

func TestResolveWildcardDirectorySegment(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/overlays/rpi4/bcm.dtbo", "a")
	testutil.WriteFile(t, fsys, "/artifacts/overlays/rpi5/bcm.dtbo", "b")

	res, err := Resolve(fsys, artifactRoot, strPtr("overlays/*/bcm.dtbo;dtbo/"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "overlays/rpi4/bcm.dtbo", Dest: "dtbo/bcm.dtbo"},
		{Source: "overlays/rpi5/bcm.dtbo", Dest: "dtbo/bcm.dtbo"},
	}, res.Pairs())
}

func TestResolveDirectoriesAreNeverLeafMatches(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("/artifacts/kernel.bin", 0755))
	testutil.WriteFile(t, fsys, "/artifacts/initrd.bin", "rd")

	res, err := Resolve(fsys, artifactRoot, strPtr("*.bin"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "initrd.bin", Dest: "initrd.bin"},
	}, res.Pairs())
}

func TestResolveWildcardSkipsDotfiles(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/.hidden.bin", "h")
	testutil.WriteFile(t, fsys, "/artifacts/shown.bin", "s")

	res, err := Resolve(fsys, artifactRoot, strPtr("*.bin"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: "shown.bin", Dest: "shown.bin"},
	}, res.Pairs())

	// An explicit leading dot in the pattern does match.
	res, err = Resolve(fsys, artifactRoot, strPtr(".hidden.bin"))
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		{Source: ".hidden.bin", Dest: ".hidden.bin"},
	}, res.Pairs())
}

func TestResolveInvalidGlob(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/a.txt", "x")

	_, err := Resolve(fsys, artifactRoot, strPtr("[.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpecEntryInvalid))
}

func TestResolveMixedMatchAndMiss(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/artifacts/found.img", "x")

	res, err := Resolve(fsys, artifactRoot, strPtr("missing.img found.img"))
	require.NoError(t, err)
	assert.Equal(t, StateResolved, res.State())
	assert.Equal(t, []types.Pair{
		{Source: "found.img", Dest: "found.img"},
	}, res.Pairs())
}
