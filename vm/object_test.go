package vm

import "testing"

func TestObjectSetGet(t *testing.T) {
	o := NewObject()
	o.Set(StringValue("a"), NumberValue(1))
	o.Set(StringValue("b"), NumberValue(2))

	if got := o.Get(StringValue("a")).AsNumber(); got != 1 {
		t.Errorf("Get(a) = %v, want 1", got)
	}
	if got := o.Get(StringValue("b")).AsNumber(); got != 2 {
		t.Errorf("Get(b) = %v, want 2", got)
	}
	if !o.Get(StringValue("missing")).IsNil() {
		t.Error("missing key should read as nil")
	}
}

func TestObjectOverwrite(t *testing.T) {
	o := NewObject()
	k := StringValue("k")
	o.Set(k, NumberValue(1))
	o.Set(StringValue("other"), NumberValue(0))
	afterFirst := o.Len()

	o.Set(k, NumberValue(2))

	if got := o.Get(k).AsNumber(); got != 2 {
		t.Errorf("Get(k) = %v, want 2", got)
	}
	if o.Len() != afterFirst {
		t.Errorf("Len() = %d after overwrite, want %d", o.Len(), afterFirst)
	}
	if first := o.Keys().Get(0).AsString(); first != "k" {
		t.Errorf("first key = %q, want k (overwrite must keep position)", first)
	}
}

func TestObjectNilValuedKeyStaysUnique(t *testing.T) {
	o := NewObject()
	k := StringValue("k")
	o.Set(k, NilValue())
	o.Set(k, NilValue())
	if o.Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.Len())
	}
	if !o.Has(k) {
		t.Error("Has(k) = false for a key mapped to nil")
	}
	if o.Has(StringValue("absent")) {
		t.Error("Has(absent) = true")
	}
}

func TestObjectInsertionOrder(t *testing.T) {
	v := ObjectFrom(
		[]Value{StringValue("z"), StringValue("a"), NumberValue(3)},
		[]Value{NumberValue(1), NumberValue(2), NumberValue(3)},
	)
	if got := v.String(); got != "{z: 1, a: 2, 3: 3}" {
		t.Errorf("String() = %q", got)
	}
	var keys []string
	v.AsObject().Each(func(k, _ Value) bool {
		keys = append(keys, k.String())
		return true
	})
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "3" {
		t.Errorf("Each order = %v", keys)
	}
}

func TestObjectSetCopiesValue(t *testing.T) {
	o := NewObject()
	xs := ListValue()
	o.Set(StringValue("xs"), xs)
	xs.AsList().Append(NumberValue(1))
	if got := o.Get(StringValue("xs")).AsList().Len(); got != 0 {
		t.Errorf("stored list length = %d, want 0", got)
	}
}

func TestObjectFromMissingValues(t *testing.T) {
	v := ObjectFrom([]Value{StringValue("a"), StringValue("b")}, []Value{NumberValue(1)})
	if v.AsObject().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.AsObject().Len())
	}
	if !v.AsObject().Get(StringValue("b")).IsNil() {
		t.Error("key without a value should map to nil")
	}
}

// Object keys are compared with Equals, so object-valued keys never match
// and each Set appends.
func TestObjectObjectKeysNeverMatch(t *testing.T) {
	o := NewObject()
	key := ObjectValue()
	o.Set(key, NumberValue(1))
	o.Set(key, NumberValue(2))
	if o.Len() != 2 {
		t.Errorf("Len() = %d, want 2", o.Len())
	}
	if !o.Get(key).IsNil() {
		t.Error("object-valued key should not be found")
	}
}
