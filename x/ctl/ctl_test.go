package ctl

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := bytes.NewBuffer([]byte{})

	err := WriteJSON(w, map[string]any{"valid": true, "alg": "HS256"})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"alg\": \"HS256\",\n\t\"valid\": true\n}\n", w.String())

	err = WriteJSON(w, make(chan int))
	assert.Error(t, err)
}

func TestVersionVal(t *testing.T) {
	v := VersionFlag("1.2.3")
	assert.True(t, v.IsBool())
	assert.NoError(t, v.Decode(nil))
}

func TestBool(t *testing.T) {
	var bm boolPtrMapper
	assert.True(t, bm.IsBool())
}

func TestParse(t *testing.T) {
	var cl struct {
		Version VersionFlag
		Cmd     struct {
			Ptr *bool `help:"test bool ptr"`
		} `kong:"cmd"`
	}

	p := mustNew(t, &cl)
	ctx, err := p.Parse([]string{"cmd", "--ptr=false"})
	require.NoError(t, err)
	require.Equal(t, "cmd", ctx.Command())
	if assert.NotNil(t, cl.Cmd.Ptr) {
		assert.False(t, *cl.Cmd.Ptr)
	}

	ctx, err = p.Parse([]string{"cmd", "--ptr=1"})
	require.NoError(t, err)
	require.Equal(t, "cmd", ctx.Command())
	if assert.NotNil(t, cl.Cmd.Ptr) {
		assert.True(t, *cl.Cmd.Ptr)
	}

	ctx, err = p.Parse([]string{"cmd", "--ptr"})
	require.NoError(t, err)
	require.Equal(t, "cmd", ctx.Command())
	if assert.NotNil(t, cl.Cmd.Ptr) {
		assert.True(t, *cl.Cmd.Ptr)
	}

	_, err = p.Parse([]string{"cmd", "--ptr=invalid"})
	assert.EqualError(t, err, "--ptr: bool value must be true, 1, yes, false, 0 or no but got \"invalid\"")
}

func TestVersionFlag(t *testing.T) {
	var cl struct {
		Version VersionFlag
	}

	out := bytes.NewBuffer([]byte{})
	exited := -1
	parser, err := kong.New(&cl,
		kong.Name("test"),
		kong.Writers(out, out),
		kong.Exit(func(code int) { exited = code }),
		kong.Vars{"version": "1.2.3"},
		BoolPtrMapper,
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--version"})
	assert.Equal(t, 0, exited)
	assert.Equal(t, "1.2.3\n", out.String())
}

func mustNew(t *testing.T, cli any, options ...kong.Option) *kong.Kong {
	t.Helper()
	options = append([]kong.Option{
		kong.Name("test"),
		kong.Exit(func(int) {
			t.Helper()
			t.Fatalf("unexpected exit()")
		}),
		BoolPtrMapper,
	}, options...)
	parser, err := kong.New(cli, options...)
	require.NoError(t, err)

	return parser
}
