// Package config holds the assembler settings and loads them from
// Starlark settings files.
package config

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/ch8asm/chip8"
)

// Settings configures an assembly run.
type Settings struct {
	Origin  uint16 `doc:"program load address"`
	Jobs    int    `doc:"lines encoded concurrently"`
	Verbose bool   `doc:"log every assembler pass"`
	Listing bool   `doc:"print a listing after assembly"`

	Aliases map[string]string // Predefined aliases.
}

// NewSettings returns the default settings.
func NewSettings() *Settings {
	return &Settings{
		Origin:  chip8.Origin,
		Jobs:    1,
		Verbose: false,
		Listing: false,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(Settings{})
	for i := 0; i < settingsType.NumField(); i++ {
		f := settingsType.Field(i)
		doc, ok := f.Tag.Lookup("doc")
		if !ok {
			continue
		}
		settingsFields = append(settingsFields, settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		})
	}
	for i := range settingsFields {
		settingsTree.Add(strings.ToLower(settingsFields[i].name), &settingsFields[i])
	}
}

// Display writes every setting and its description to w.
func (s *Settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for _, f := range settingsFields {
		v := value.Field(f.index)
		var line string
		switch f.kind {
		case reflect.Uint16:
			line = fmt.Sprintf("    %-16s 0x%03X", f.name, uint16(v.Uint()))
		default:
			line = fmt.Sprintf("    %-16s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-28s (%s)\n", line, f.doc)
	}
	for _, name := range slices.Sorted(maps.Keys(s.Aliases)) {
		fmt.Fprintf(w, "    alias %v %v\n", name, s.Aliases[name])
	}
}

// Set assigns value to the setting named by an unambiguous prefix of key.
func (s *Settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return &ErrSetting{Key: key, Err: err}
	}

	vIn := reflect.ValueOf(value)
	if !vIn.IsValid() || (f.kind == reflect.Bool) != (vIn.Kind() == reflect.Bool) ||
		vIn.Kind() == reflect.String || !vIn.Type().ConvertibleTo(f.typ) {
		return &ErrSetting{Key: f.name, Err: ErrSettingType}
	}

	switch f.kind {
	case reflect.Uint16:
		n, ok := intOf(vIn)
		if !ok || n < 0 || n > chip8.MaxAddress {
			return &ErrSetting{Key: f.name, Err: ErrSettingRange}
		}
	case reflect.Int:
		n, ok := intOf(vIn)
		if !ok || n < 0 {
			return &ErrSetting{Key: f.name, Err: ErrSettingRange}
		}
	}

	vOut := reflect.ValueOf(s).Elem().Field(f.index)
	vOut.Set(vIn.Convert(f.typ))

	return nil
}

// intOf returns an integer value as an int64.
func intOf(v reflect.Value) (int64, bool) {
	switch {
	case v.CanInt():
		return v.Int(), true
	case v.CanUint() && v.Uint() <= 1<<62:
		return int64(v.Uint()), true
	}
	return 0, false
}

// SetString parses text for the setting named by key, then assigns it.
// Numbers may use the 0x and 0b prefixes.
func (s *Settings) SetString(key string, text string) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return &ErrSetting{Key: key, Err: err}
	}

	switch f.kind {
	case reflect.Bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return &ErrSetting{Key: f.name, Err: ErrSettingType}
		}
		return s.Set(f.name, v)
	default:
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return &ErrSetting{Key: f.name, Err: ErrSettingType}
		}
		return s.Set(f.name, v)
	}
}
