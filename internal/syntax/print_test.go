package syntax

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const printSrc = `int x = 1;
function f(int: a) -> int {
  if (a < 1) { ret(0); } else { ret(a); }
}
loop range(0, 2) { log(x); }
`

func TestFprint(t *testing.T) {
	prog := parseProgram(t, printSrc)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, prog))

	want := `Program test.ssl:1:1
  IntDecl x test.ssl:1:1
    Primary int 1 test.ssl:1:9
  FuncDef f test.ssl:2:1
    Params:
      a int
    Result: int
    Body:
      Block test.ssl:2:27
        If test.ssl:3:3
          Cond:
            Binary < test.ssl:3:7
              Primary name a test.ssl:3:7
              Primary int 1 test.ssl:3:11
          Then:
            Block test.ssl:3:14
              Return test.ssl:3:16
                Primary int 0 test.ssl:3:20
          Else:
            Block test.ssl:3:31
              Return test.ssl:3:33
                Primary name a test.ssl:3:37
  For test.ssl:5:1
    Range:
      Primary int 0 test.ssl:5:12
      Primary int 2 test.ssl:5:15
    Body:
      Block test.ssl:5:18
        Print test.ssl:5:20
          Primary name x test.ssl:5:24
`
	assert.Equal(t, want, buf.String())
}

func TestFprintJSON(t *testing.T) {
	prog := parseProgram(t, "int[2] xs = {1, 2};\nxs.add(3);\n")

	var buf bytes.Buffer
	require.NoError(t, FprintJSON(&buf, prog))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Program", got["type"])

	decls := got["decls"].([]interface{})
	require.Len(t, decls, 1)
	decl := decls[0].(map[string]interface{})
	assert.Equal(t, "ArrayDecl", decl["type"])
	assert.Equal(t, "xs", decl["name"])
	assert.Equal(t, "int", decl["elem"])
	assert.Equal(t, "2", decl["size"])
	assert.Len(t, decl["elems"], 2)

	stmts := got["stmts"].([]interface{})
	require.Len(t, stmts, 1)
	call := stmts[0].(map[string]interface{})["x"].(map[string]interface{})
	assert.Equal(t, "MethodCall", call["type"])
	assert.Equal(t, "add", call["method"])
}

func TestFprintYAML(t *testing.T) {
	prog := parseProgram(t, "bool ok = not false;")

	var buf bytes.Buffer
	require.NoError(t, FprintYAML(&buf, prog))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	decl := got["decls"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "BoolDecl", decl["type"])
	value := decl["value"].(map[string]interface{})
	assert.Equal(t, "Unary", value["type"])
	assert.Equal(t, "not", value["op"])
	assert.Equal(t, "bool", value["x"].(map[string]interface{})["kind"])
}

func TestWalk(t *testing.T) {
	prog := parseProgram(t, printSrc)

	var kinds []string
	Inspect(prog, func(n Node) bool {
		switch n.(type) {
		case *FuncDef:
			kinds = append(kinds, "func")
			return false // skip the body
		case *PrimaryExpr:
			kinds = append(kinds, "primary")
		case *BlockStmt:
			kinds = append(kinds, "block")
		}
		return true
	})
	assert.Equal(t, []string{"primary", "func", "primary", "primary", "block", "primary"}, kinds)

	assert.Equal(t, 21, Count(prog))
}
