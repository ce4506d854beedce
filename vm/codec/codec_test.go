package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/linx-lang/linx/vm"
)

func TestRoundTrip(t *testing.T) {
	obj := vm.ObjectFrom(
		[]vm.Value{vm.StringValue("name"), vm.NumberValue(2)},
		[]vm.Value{vm.StringValue("linx"), vm.ListValue(vm.BoolValue(true), vm.NilValue())},
	)
	tests := []vm.Value{
		vm.NilValue(),
		vm.BoolValue(true),
		vm.BoolValue(false),
		vm.NumberValue(0),
		vm.NumberValue(-12.75),
		vm.NumberValue(math.Inf(1)),
		vm.StringValue(""),
		vm.StringValue("hello, linx"),
		vm.ListValue(),
		vm.ListValue(vm.NumberValue(1), vm.ListValue(vm.StringValue("nested"))),
		obj,
	}
	for _, v := range tests {
		data, err := Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", v, err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal(%s): %v", v, err)
		}
		if got.Kind() != v.Kind() {
			t.Errorf("kind = %s, want %s", got.Kind(), v.Kind())
		}
		// Objects never compare equal, so compare display forms.
		if got.String() != v.String() {
			t.Errorf("round trip = %s, want %s", got, v)
		}
	}
}

func TestRoundTripNaN(t *testing.T) {
	data, err := Marshal(vm.NumberValue(math.NaN()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !math.IsNaN(got.AsNumber()) {
		t.Errorf("got %s, want nan", got)
	}
}

func TestRoundTripPreservesObjectOrder(t *testing.T) {
	obj := vm.ObjectFrom(
		[]vm.Value{vm.StringValue("z"), vm.StringValue("a"), vm.StringValue("m")},
		[]vm.Value{vm.NumberValue(1), vm.NumberValue(2), vm.NumberValue(3)},
	)
	data, err := Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.String() != "{z: 1, a: 2, m: 3}" {
		t.Errorf("got %s", got)
	}
}

func TestDeterministic(t *testing.T) {
	a, err := Marshal(vm.ListValue(vm.NumberValue(1), vm.StringValue("x")))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(vm.ListValue(vm.NumberValue(1), vm.StringValue("x")))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("equal values should encode identically")
	}
}

func TestFunctionNotEncodable(t *testing.T) {
	fn := vm.FunctionValue(func(vm.Env, []vm.Value) vm.Value { return vm.NilValue() })
	if _, err := Marshal(fn); !errors.Is(err, ErrFunction) {
		t.Errorf("Marshal(function) error = %v, want ErrFunction", err)
	}
	nested := vm.ListValue(vm.NumberValue(1), fn)
	if _, err := Marshal(nested); !errors.Is(err, ErrFunction) {
		t.Errorf("Marshal(list with function) error = %v, want ErrFunction", err)
	}
	obj := vm.ObjectFrom([]vm.Value{vm.StringValue("f")}, []vm.Value{fn})
	if _, err := Marshal(obj); !errors.Is(err, ErrFunction) {
		t.Errorf("Marshal(object with function) error = %v, want ErrFunction", err)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for malformed data")
	}

	bad, err := encMode.Marshal(wireValue{Kind: 42})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(bad); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("error = %v, want ErrInvalidKind", err)
	}

	fn, err := encMode.Marshal(wireValue{Kind: uint8(vm.KindFunction)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(fn); !errors.Is(err, ErrFunction) {
		t.Errorf("error = %v, want ErrFunction", err)
	}

	mismatched, err := encMode.Marshal(wireValue{
		Kind: uint8(vm.KindObject),
		Keys: []wireValue{{Kind: uint8(vm.KindString), String: "k"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(mismatched); err == nil {
		t.Error("expected error for object with missing values")
	}
}

// nested returns a value with depth lists wrapped around a number.
func nested(depth int) vm.Value {
	v := vm.NumberValue(1)
	for i := 0; i < depth; i++ {
		v = vm.ListValue(v)
	}
	return v
}

func TestMaxDepthRoundTrip(t *testing.T) {
	v := nested(MaxDepth)
	data, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal at MaxDepth: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal at MaxDepth: %v", err)
	}
	if got.String() != v.String() {
		t.Error("value at MaxDepth did not survive the round trip")
	}

	key := vm.ObjectFrom([]vm.Value{nested(MaxDepth - 1)}, []vm.Value{vm.NilValue()})
	if _, err := Marshal(key); err != nil {
		t.Errorf("Marshal object with nested key at MaxDepth: %v", err)
	}
}

func TestTooDeep(t *testing.T) {
	if _, err := Marshal(nested(MaxDepth + 1)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Marshal past MaxDepth error = %v, want ErrTooDeep", err)
	}
	obj := vm.ObjectFrom([]vm.Value{vm.StringValue("deep")}, []vm.Value{nested(MaxDepth)})
	if _, err := Marshal(obj); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Marshal object past MaxDepth error = %v, want ErrTooDeep", err)
	}
}
