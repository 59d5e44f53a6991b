package ctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
)

// VersionFlag is a flag to print version
type VersionFlag string

// Decode the flag
func (v VersionFlag) Decode(_ *kong.DecodeContext) error { return nil }

// IsBool returns true for the flag
func (v VersionFlag) IsBool() bool { return true }

// BeforeApply is executed before context is applied
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	ver := vars["version"]
	if ver == "" {
		ver = string(v)
	}
	fmt.Fprintln(app.Stdout, ver)
	app.Exit(0)
	return nil
}

// WriteJSON prints indented JSON to out, map keys are sorted
func WriteJSON(out io.Writer, value any) error {
	js, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return errors.WithMessage(err, "failed to encode")
	}

	_, _ = out.Write(js)
	_, _ = out.Write([]byte("\n"))
	return nil
}
