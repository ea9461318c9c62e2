// Package dbg has helpers for eyeballing geometry while debugging: readable
// names for values, colored one-line summaries, and PNG renders that can be
// previewed inline in the terminal.
package dbg

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are generated lazily and memoized for the life of the process, so the
// memo only grows. It is meant for debugging sessions, not long-running use.
var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so the same name does not refer
	// to the same thing between runs. Randomizing makes that obvious.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name like "BraveOtter" for obj. Nil pointers
// and nil interfaces are "Ø". obj must be comparable.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
