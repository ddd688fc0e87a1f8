package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hiddesc/hiddesc"
)

// sourceFlags are the input flags shared by every compiling command:
// the source file plus its parameter environment, assembled from an
// optional YAML file and any number of --set overrides.
type sourceFlags struct {
	File   string           `arg:"" help:"Descriptor source file." type:"existingfile"`
	Params string           `help:"YAML file of parameter values (name: value)." type:"existingfile" placeholder:"FILE"`
	Set    map[string]int64 `short:"s" help:"Set a parameter (name=value); repeatable." placeholder:"NAME=VALUE"`
}

// load reads the source file and builds its parameter environment.
// --set values override the params file.
func (f *sourceFlags) load(logger *slog.Logger) (*hiddesc.MapSource, error) {
	data, err := os.ReadFile(f.File)
	if err != nil {
		return nil, err
	}
	src := hiddesc.FromBytes(data)
	if f.Params != "" {
		raw, err := os.ReadFile(f.Params)
		if err != nil {
			return nil, err
		}
		var params map[string]int64
		if err := yaml.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Params, err)
		}
		src.SetAll(params)
		if logger != nil {
			logger.Debug("loaded parameter file", "file", f.Params, "params", len(params))
		}
	}
	src.SetAll(f.Set)
	return src, nil
}

// compileOpts converts the bound logger into library options.
func compileOpts(logger *slog.Logger) []hiddesc.Option {
	if logger == nil {
		return nil
	}
	return []hiddesc.Option{hiddesc.WithLogger(logger)}
}

// sourceError prefixes a compile failure with the file name, yielding
// the usual file:line:col: message form.
func (f *sourceFlags) sourceError(err error) error {
	return fmt.Errorf("%s:%w", f.File, err)
}
