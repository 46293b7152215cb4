// This file is part of go-optspec.
//
// Copyright (C) 2023-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package binding

import (
	"reflect"
	"testing"
)

func TestBinding(t *testing.T) {
	tests := []struct {
		name    string
		binding *Binding
		input   []string
		output  interface{}
	}{
		{"flag", func() *Binding {
			b := false
			return New('a', FlagKind, &b)
		}(), []string{}, true},
		{"flag ignores data", func() *Binding {
			b := false
			return New('a', FlagKind, &b)
		}(), []string{"x"}, true},
		{"valued", func() *Binding {
			v := ""
			return New('f', ValuedKind, &v)
		}(), []string{"hola"}, "hola"},
		{"valued verbatim dash", func() *Binding {
			v := ""
			return New('f', ValuedKind, &v)
		}(), []string{"-a"}, "-a"},
		{"valued empty save keeps default", func() *Binding {
			v := ""
			return New('f', ValuedKind, &v)
		}(), []string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.binding.Save(tt.input...)
			got := tt.binding.Value()
			if !reflect.DeepEqual(got, tt.output) {
				t.Errorf("got = '%#v', want '%#v'", got, tt.output)
			}
		})
	}
}

func TestBindingReceivers(t *testing.T) {
	b := false
	fb := New('a', FlagKind, &b)
	fb.Save()
	if !b {
		t.Errorf("flag receiver not updated")
	}
	v := ""
	vb := New('f', ValuedKind, &v)
	vb.Save("mundo")
	if v != "mundo" {
		t.Errorf("valued receiver not updated: %q", v)
	}
}

func TestBindingReset(t *testing.T) {
	b := false
	fb := New('a', FlagKind, &b)
	fb.SetCalled()
	fb.Save()
	fb.Reset()
	if b || fb.Called {
		t.Errorf("flag not reset: value %v, called %v", b, fb.Called)
	}
	v := ""
	vb := New('f', ValuedKind, &v)
	vb.SetCalled()
	vb.Save("hola")
	vb.Reset()
	if v != "" || vb.Called {
		t.Errorf("valued not reset: value %q, called %v", v, vb.Called)
	}
}

func TestBindingCalled(t *testing.T) {
	b := false
	fb := New('a', FlagKind, &b)
	if fb.Called {
		t.Errorf("called before any save")
	}
	fb.SetCalled()
	if !fb.Called {
		t.Errorf("not marked as called")
	}
}
