/*
Copyright 2026 The Devserve Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package testutil

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type T struct {
	*testing.T
}

type BadWriter struct{}

func (BadWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("bad write") }

// Run runs a named subtest with a testutil.T wrapping the testing.T.
func Run(t *testing.T, name string, f func(t *T)) {
	if name == "" {
		name = t.Name()
	}

	t.Run(name, func(tt *testing.T) {
		tt.Helper()
		f(&T{T: tt})
	})
}

// Override sets a value and restores it at the end of the test.
// dest must be a pointer to a variable of the same type as value.
func (t *T) Override(dest, value interface{}) {
	t.Helper()

	err := override(t.T, dest, value)
	if err != nil {
		t.Fatal(err)
	}
}

func override(t *testing.T, dest, value interface{}) error {
	t.Helper()

	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("has to be a pointer")
	}
	destValue = destValue.Elem()

	if value == nil {
		tmp := reflect.ValueOf(destValue.Interface())
		t.Cleanup(func() { destValue.Set(tmp) })
		destValue.Set(reflect.Zero(destValue.Type()))
		return nil
	}

	valueType := reflect.TypeOf(value)
	if !valueType.AssignableTo(destValue.Type()) {
		return fmt.Errorf("cannot assign %s to %s", valueType, destValue.Type())
	}

	tmp := reflect.ValueOf(destValue.Interface())
	t.Cleanup(func() { destValue.Set(tmp) })
	destValue.Set(reflect.ValueOf(value))
	return nil
}

// Context returns a context that is cancelled when the test ends.
func (t *T) Context() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func (t *T) CheckDeepEqual(expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckDeepEqual(t.T, expected, actual, opts...)
}

func (t *T) CheckErrorAndDeepEqual(shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckErrorAndDeepEqual(t.T, shouldErr, err, expected, actual, opts...)
}

func (t *T) CheckError(shouldErr bool, err error) {
	t.Helper()
	CheckError(t.T, shouldErr, err)
}

func (t *T) CheckNoError(err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func (t *T) RequireNoError(err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func (t *T) CheckErrorContains(message string, err error) {
	t.Helper()
	CheckErrorContains(t.T, message, err)
}

func (t *T) CheckContains(expected, actual string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("expected output %q to contain %q", actual, expected)
	}
}

func (t *T) CheckEmpty(actual string) {
	t.Helper()
	if actual != "" {
		t.Errorf("expected empty output, got %q", actual)
	}
}

func (t *T) CheckTrue(actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
	}
}

func (t *T) CheckFalse(actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
	}
}

func CheckDeepEqual(t *testing.T, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(actual, expected, opts...); diff != "" {
		t.Errorf("%T differ (-got, +want): %s", expected, diff)
	}
}

func CheckErrorAndDeepEqual(t *testing.T, shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
		return
	}
	if !shouldErr {
		CheckDeepEqual(t, expected, actual, opts...)
	}
}

func CheckError(t *testing.T, shouldErr bool, err error) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
	}
}

func CheckErrorContains(t *testing.T, message string, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected error, but returned none")
		return
	}
	if !strings.Contains(err.Error(), message) {
		t.Errorf("expected message [%s] not found in error: %s", message, err)
	}
}

func checkErr(shouldErr bool, err error) error {
	if err == nil && shouldErr {
		return errors.New("expected error, but returned none")
	}
	if err != nil && !shouldErr {
		return fmt.Errorf("unexpected error: %s", err)
	}
	return nil
}
