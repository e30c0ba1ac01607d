package config

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// predeclared names available to settings files.
var predeclared = starlark.StringDict{
	"CHIP8_ORIGIN":  starlark.MakeInt(0x200),
	"ETI660_ORIGIN": starlark.MakeInt(0x600),
}

// Load executes a Starlark settings file and returns the default settings
// overridden by its globals. Globals are matched to settings by their lower
// case name; 'aliases' is a dict of predefined aliases. Other globals are
// ignored. src is as for starlark.ExecFileOptions: nil reads filename.
//
//	origin = ETI660_ORIGIN
//	jobs = 4
//	aliases = {"PLAYER": "V1", "SCORE": "VE"}
func Load(filename string, src any) (settings *Settings, err error) {
	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	s := NewSettings()
	for _, field := range settingsFields {
		key := strings.ToLower(field.name)
		value, ok := globals[key]
		if !ok {
			continue
		}

		var goValue any
		switch v := value.(type) {
		case starlark.Bool:
			goValue = bool(v)
		case starlark.Int:
			i64, ok := v.Int64()
			if !ok {
				err = &ErrSetting{Key: field.name, Err: ErrSettingRange}
				return
			}
			goValue = i64
		default:
			err = &ErrSetting{Key: field.name, Err: ErrSettingType}
			return
		}

		err = s.Set(field.name, goValue)
		if err != nil {
			return
		}
	}

	aliases, ok := globals["aliases"]
	if ok {
		s.Aliases, err = loadAliases(aliases)
		if err != nil {
			return
		}
	}

	settings = s
	return
}

// loadAliases converts a Starlark dict of strings.
func loadAliases(value starlark.Value) (aliases map[string]string, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrSetting{Key: "aliases", Err: ErrAliasesType}
		return
	}

	aliases = make(map[string]string, dict.Len())
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrSetting{Key: "aliases", Err: ErrAliasesType}
			return
		}
		alias, ok := starlark.AsString(item[1])
		if !ok {
			err = &ErrSetting{Key: "aliases", Err: ErrAliasesType}
			return
		}
		aliases[name] = alias
	}

	return
}
