// SPDX-License-Identifier: MIT
package cnf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/cnf"
)

func TestWrite_HeaderAndUnitClauses(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	b := g.CreatePI("b")
	g.CreatePO(g.CreateAnd(a, b), "", aig.POOutput)

	var buf bytes.Buffer
	vars, err := cnf.Write(&buf, g)
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "p 4 5", lines[0])
	assert.Equal(t, "-1 0", lines[1])

	assert.Equal(t, 1, vars[aig.ConstFalse])
	assert.Equal(t, 2, vars[a])
	assert.Equal(t, 3, vars[b])
}
