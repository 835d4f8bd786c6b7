// Package deepsize estimates the total memory reachable from a value.
// The store uses it to report its footprint: soft-deleted records are
// never reclaimed, so the estimate is expected to grow monotonically.
package deepsize

import "reflect"

// Of returns an estimate in bytes of the memory occupied by v,
// including all reachable heap allocations. Memory shared through
// pointers is counted once.
func Of(v any) int64 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	seen := make(map[uintptr]bool)
	return int64(rv.Type().Size()) + indirect(rv, seen)
}

// indirect returns the heap-allocated size reachable from v, excluding
// the inline storage already counted by v's container.
func indirect(v reflect.Value, seen map[uintptr]bool) int64 {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || seen[v.Pointer()] {
			return 0
		}
		seen[v.Pointer()] = true
		elem := v.Elem()
		return int64(elem.Type().Size()) + indirect(elem, seen)

	case reflect.String:
		return int64(v.Len())

	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		elemType := v.Type().Elem()
		size := int64(v.Cap()) * int64(elemType.Size())
		if hasIndirect(elemType) {
			for i := 0; i < v.Len(); i++ {
				size += indirect(v.Index(i), seen)
			}
		}
		return size

	case reflect.Array:
		var size int64
		if hasIndirect(v.Type().Elem()) {
			for i := 0; i < v.Len(); i++ {
				size += indirect(v.Index(i), seen)
			}
		}
		return size

	case reflect.Struct:
		var size int64
		for i := 0; i < v.NumField(); i++ {
			size += indirect(v.Field(i), seen)
		}
		return size

	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		// The runtime's bucket layout is not observable via reflect;
		// approximate it as key + value + per-entry overhead.
		keySize := int64(v.Type().Key().Size())
		elemSize := int64(v.Type().Elem().Size())
		size := int64(v.Len()) * (keySize + elemSize + 16)
		for iter := v.MapRange(); iter.Next(); {
			size += indirect(iter.Key(), seen)
			size += indirect(iter.Value(), seen)
		}
		return size

	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		elem := v.Elem()
		return int64(elem.Type().Size()) + indirect(elem, seen)

	default:
		// Scalars carry no indirect storage.
		return 0
	}
}

// hasIndirect reports whether values of type t can reference heap
// memory beyond their inline representation.
func hasIndirect(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.String, reflect.Slice, reflect.Map,
		reflect.Interface:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasIndirect(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return hasIndirect(t.Elem())
	}
	return false
}
