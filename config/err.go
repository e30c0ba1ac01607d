package config

import (
	"errors"

	"github.com/ezrec/ch8asm/translate"
)

var f = translate.From

var (
	// Settings errors
	ErrSettingType  = errors.New(f("invalid type"))
	ErrSettingRange = errors.New(f("value out of range"))
	ErrAliasesType  = errors.New(f("aliases must map strings to strings"))
)

// ErrSetting reports a setting that could not be applied.
type ErrSetting struct {
	Key string
	Err error
}

func (err *ErrSetting) Error() string {
	return f("setting %v: %v", err.Key, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}
