package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryQualified(t *testing.T) {
	r := NewRegistry()
	c, err := r.ResolveType("java.lang.String")
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String", c.Name())

	// Resolution is canonical.
	c2, err := r.ResolveType("java.lang.String")
	require.NoError(t, err)
	assert.Same(t, c, c2)
}

func TestRegistryShortName(t *testing.T) {
	r := NewRegistry()
	_, err := r.ResolveType("String")
	assert.Error(t, err)

	c := r.Register("java.lang.String")
	short, err := r.ResolveType("String")
	require.NoError(t, err)
	assert.Same(t, c, short)

	long, err := r.ResolveType("java.lang.String")
	require.NoError(t, err)
	assert.Same(t, c, long)
}

func TestRegisterNoShadow(t *testing.T) {
	r := NewRegistry()
	c1 := r.Register("a.Thing")
	c2 := r.Register("b.Thing")
	assert.NotSame(t, c1, c2)

	// The first registration wins the short name.
	short, err := r.ResolveType("Thing")
	require.NoError(t, err)
	assert.Same(t, c1, short)
}
