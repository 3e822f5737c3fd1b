package assert

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/saylorsolutions/testkit/internal/set"
)

// lengthOf returns the length of anything [reflect.Value.Len] supports.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len(), true
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
			return rv.Elem().Len(), true
		}
	}
	return 0, false
}

func CollectionContains[T comparable](collection []T, element T, message string) error {
	if !slices.Contains(collection, element) {
		return failf(message, "Collection does not contain: %v", element)
	}
	return nil
}

// DeepInclude fails unless some element of collection is deeply equal to element, as in [DeepEquals].
func DeepInclude[T any](collection []T, element T, message string) error {
	for _, e := range collection {
		if deepEqual(e, element) {
			return nil
		}
	}
	return failf(message, "Collection does not deeply include: %v", element)
}

// NotDeepInclude fails if some element of collection is deeply equal to element.
func NotDeepInclude[T any](collection []T, element T, message string) error {
	for _, e := range collection {
		if deepEqual(e, element) {
			return failf(message, "Collection deeply includes: %v", element)
		}
	}
	return nil
}

// nestedContains checks whether container holds element.
// Slices and arrays are searched by value, maps by key, and strings by substring.
func nestedContains(container reflect.Value, element any) bool {
	for container.Kind() == reflect.Interface || container.Kind() == reflect.Pointer {
		if container.IsNil() {
			return false
		}
		container = container.Elem()
	}
	switch container.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < container.Len(); i++ {
			if objectsAreEqual(container.Index(i).Interface(), element) {
				return true
			}
		}
	case reflect.Map:
		for _, key := range container.MapKeys() {
			if objectsAreEqual(key.Interface(), element) {
				return true
			}
		}
	case reflect.String:
		if s, ok := element.(string); ok {
			return strings.Contains(container.String(), s)
		}
	}
	return false
}

func includesNested(collection any, nested any) bool {
	if collection == nil {
		return false
	}
	rv := reflect.ValueOf(collection)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if nestedContains(rv.Index(i), nested) {
			return true
		}
	}
	return false
}

// NestedInclude fails unless one of the collections within collection contains nested.
// Elements that are not collections themselves are skipped.
func NestedInclude(collection any, nested any, message string) error {
	if !includesNested(collection, nested) {
		return failf(message, "Collection does not include nested element: %v", nested)
	}
	return nil
}

// NotNestedInclude fails if one of the collections within collection contains nested.
func NotNestedInclude(collection any, nested any, message string) error {
	if includesNested(collection, nested) {
		return failf(message, "Collection includes nested element: %v", nested)
	}
	return nil
}

// SubsetOf fails unless every element of subset is present in superset.
func SubsetOf[T comparable](subset, superset []T, message string) error {
	super := set.New(superset...)
	var missing []T
	for _, v := range subset {
		if !super.Has(v) && !slices.Contains(missing, v) {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return failf(message, "Expected subset, but elements were not found: %v", missing)
	}
	return nil
}

// Disjoint fails if the collections share any element.
func Disjoint[T comparable](collection1, collection2 []T, message string) error {
	if common := set.New(collection2...).Common(collection1); len(common) > 0 {
		return failf(message, "Collections are not disjoint; common element(s): %v", common)
	}
	return nil
}

// SameMembers fails unless both collections hold the same distinct elements, ignoring order and repetition.
func SameMembers[T comparable](collection1, collection2 []T, message string) error {
	if !set.New(collection1...).Equal(set.New(collection2...)) {
		return failf(message, "Collections do not have the same members")
	}
	return nil
}

func NotSameMembers[T comparable](collection1, collection2 []T, message string) error {
	if set.New(collection1...).Equal(set.New(collection2...)) {
		return failf(message, "Collections have the same members, but they should not")
	}
	return nil
}

// CollectionEmpty fails unless collection is a slice, array, map, channel, or string with no elements.
func CollectionEmpty(collection any, message string) error {
	l, ok := lengthOf(collection)
	if !ok {
		return failf(message, "Expected a collection, but was: %T", collection)
	}
	if l > 0 {
		return failf(message, "Expected empty collection, but was not.")
	}
	return nil
}

func CollectionNotEmpty(collection any, message string) error {
	l, ok := lengthOf(collection)
	if !ok {
		return failf(message, "Expected a collection, but was: %T", collection)
	}
	if l == 0 {
		return failf(message, "Expected non-empty collection, but was empty.")
	}
	return nil
}

func CollectionLength(collection any, expectedLength int, message string) error {
	l, ok := lengthOf(collection)
	if !ok {
		return failf(message, "Expected a collection, but was: %T", collection)
	}
	if l != expectedLength {
		return failf(message, "Expected length: %d, but was: %d", expectedLength, l)
	}
	return nil
}

// ArrayLength fails unless array is a slice or array of the expected length.
func ArrayLength(array any, expectedLength int, message string) error {
	if !isArray(array) {
		return failf(message, "Object is not a slice or array")
	}
	if l := reflect.ValueOf(array).Len(); l != expectedLength {
		return failf(message, "Expected array length: %d, but was: %d", expectedLength, l)
	}
	return nil
}

// EmptyObject fails if obj is nil, or if it's a map, string, or other collection with elements.
// Values that have no length pass.
func EmptyObject(obj any, message string) error {
	if obj == nil {
		return failf(message, "Expected empty object, but got nil.")
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return failf(message, "Expected empty object, but got nil.")
	}
	l, ok := lengthOf(obj)
	if !ok || l == 0 {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		return failf(message, "Expected empty map, but was not.")
	case reflect.String:
		return failf(message, "Expected empty string, but was not.")
	default:
		return failf(message, "Expected empty collection, but was not.")
	}
}

func isObject(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return true
	default:
		return false
	}
}

// ObjectIsEmpty fails if obj is a map, slice, array, or string with elements.
// Other kinds of values are not checked.
func ObjectIsEmpty(obj any, message string) error {
	rv := reflect.ValueOf(obj)
	if isObject(rv) && rv.Len() > 0 {
		return failf(message, "Expected empty object, but was not.")
	}
	return nil
}

// ObjectIsNotEmpty fails if obj is a map, slice, array, or string without elements.
// Other kinds of values are not checked.
func ObjectIsNotEmpty(obj any, message string) error {
	rv := reflect.ValueOf(obj)
	if isObject(rv) && rv.Len() == 0 {
		return failf(message, "Expected non-empty object, but was empty.")
	}
	return nil
}

// ObjectIncludes fails unless value is one of the values in obj.
func ObjectIncludes[K comparable, V comparable](obj map[K]V, value V, message string) error {
	for _, v := range obj {
		if v == value {
			return nil
		}
	}
	return failf(message, "Object does not include value: %v", value)
}

// HasKeys fails unless every key is present in obj, listing the ones that are missing.
func HasKeys[K comparable, V any](obj map[K]V, keys []K, message string) error {
	var missing []string
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			missing = append(missing, fmt.Sprint(key))
		}
	}
	if len(missing) > 0 {
		return failf(message, "Object is missing key(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// lookupProperty finds a named map entry, exported struct field, or method on obj.
// Maps must have a string-like key type.
func lookupProperty(obj any, name string) (reflect.Value, bool) {
	if obj == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(obj)
	if method := rv.MethodByName(name); method.IsValid() {
		return method, true
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		return val, val.IsValid()
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return reflect.Value{}, false
		}
		return rv.FieldByIndex(sf.Index), true
	}
	return reflect.Value{}, false
}

// HasProperty fails unless obj has a map key, exported field, or method with the given name.
func HasProperty(obj any, name string, message string) error {
	if _, ok := lookupProperty(obj, name); !ok {
		return failf(message, "Object does not have property: %s", name)
	}
	return nil
}

// HasPropertyValue fails unless the named property of obj equals expected.
// A missing map key reads as nil, while a missing struct field fails outright.
func HasPropertyValue(obj any, name string, expected any, message string) error {
	val, ok := lookupProperty(obj, name)
	var actual any
	switch {
	case ok && val.Kind() != reflect.Func:
		actual = val.Interface()
	case !isMap(obj):
		return failf(message, "Object does not have property: %s", name)
	}
	if !objectsAreEqual(expected, actual) {
		return failf(message, "Expected value for '%s' was %v, but got %v", name, expected, actual)
	}
	return nil
}

func isMap(obj any) bool {
	return obj != nil && reflect.TypeOf(obj).Kind() == reflect.Map
}
