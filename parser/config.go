/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package parser

import (
	"fmt"

	libval "github.com/go-playground/validator/v10"

	liberr "github.com/nabbar/x11trace/errors"
)

// Options is the read-only knob set consumed by the formatter. One Options
// value is shared by every session; runtime-tunable fields are swapped
// atomically as a whole through Parser.SetOptions.
type Options struct {
	// Verbose adds hex forms next to enum names, hidden counters and field
	// widths to every record.
	Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose" mapstructure:"verbose"`

	// Multiline renders one member per line with indentation instead of
	// one-line records.
	Multiline bool `json:"multiline" yaml:"multiline" toml:"multiline" mapstructure:"multiline"`

	// RelativeTimestamps renders TIMESTAMP fields as wall-clock UTC using
	// the RefTimestamp/RefUnixTime anchor.
	RelativeTimestamps bool `json:"relativeTimestamps" yaml:"relativeTimestamps" toml:"relativeTimestamps" mapstructure:"relativeTimestamps"`

	// RefTimestamp is the server tick anchoring relative timestamps.
	RefTimestamp uint32 `json:"refTimestamp" yaml:"refTimestamp" toml:"refTimestamp" mapstructure:"refTimestamp"`

	// RefUnixTime is the unix time matching RefTimestamp.
	RefUnixTime int64 `json:"refUnixTime" yaml:"refUnixTime" toml:"refUnixTime" mapstructure:"refUnixTime"`

	// DenyAllExtensions rewrites every QueryExtension reply to claim the
	// extension is absent. This is the only traffic modification.
	DenyAllExtensions bool `json:"denyAllExtensions" yaml:"denyAllExtensions" toml:"denyAllExtensions" mapstructure:"denyAllExtensions"`

	// Color enables colorized record prefixes on the sink.
	Color bool `json:"color" yaml:"color" toml:"color" mapstructure:"color"`
}

// Validate checks the options' struct against the awaiting model.
func (o Options) Validate() liberr.Error {
	var e = ErrorValidatorError.Error(nil)

	if err := libval.New().Struct(o); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		}

		if ers, ok := err.(libval.ValidationErrors); ok {
			for _, er := range ers {
				//nolint #goerr113
				e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
			}
		}
	}

	if !e.HasParent() {
		e = nil
	}

	return e
}

// Clone returns a copy of the options.
func (o Options) Clone() Options {
	return Options{
		Verbose:            o.Verbose,
		Multiline:          o.Multiline,
		RelativeTimestamps: o.RelativeTimestamps,
		RefTimestamp:       o.RefTimestamp,
		RefUnixTime:        o.RefUnixTime,
		DenyAllExtensions:  o.DenyAllExtensions,
		Color:              o.Color,
	}
}
