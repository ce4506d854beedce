// Package codec encodes linx values as canonical CBOR so they can be stored
// in images or passed between runtime instances.
//
// Functions carry native entry points and shared cells and cannot be
// encoded.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/linx-lang/linx/vm"
)

var (
	// ErrFunction is returned when a function value is encoded or decoded.
	ErrFunction = errors.New("codec: function values cannot be encoded")
	// ErrInvalidKind is returned when decoded data carries an unknown kind.
	ErrInvalidKind = errors.New("codec: invalid value kind")
	// ErrTooDeep is returned when a value nests more than MaxDepth lists
	// and objects.
	ErrTooDeep = errors.New("codec: value nested too deeply")
)

// MaxDepth is the deepest nesting of lists and objects Marshal accepts.
// Each container level takes two CBOR levels (the value map and its item
// arrays), and the decoder is configured to accept exactly what Marshal
// can produce.
const MaxDepth = 255

// wireValue is the encoded form of a vm.Value.
type wireValue struct {
	Kind   uint8       `cbor:"1,keyasint"`
	Bool   bool        `cbor:"2,keyasint,omitempty"`
	Number float64     `cbor:"3,keyasint"`
	String string      `cbor:"4,keyasint,omitempty"`
	Items  []wireValue `cbor:"5,keyasint,omitempty"`
	Keys   []wireValue `cbor:"6,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: failed to create CBOR enc mode: %v", err))
	}
	encMode = em

	dm, err := cbor.DecOptions{MaxNestedLevels: 2*MaxDepth + 2}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: failed to create CBOR dec mode: %v", err))
	}
	decMode = dm
}

// Marshal encodes v. Equal values encode to identical bytes.
func Marshal(v vm.Value) ([]byte, error) {
	w, err := toWire(v, 0)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(w)
}

// Unmarshal decodes a value produced by Marshal.
func Unmarshal(data []byte) (vm.Value, error) {
	var w wireValue
	if err := decMode.Unmarshal(data, &w); err != nil {
		return vm.NilValue(), fmt.Errorf("codec: unmarshal value: %w", err)
	}
	return fromWire(&w)
}

func toWire(v vm.Value, depth int) (wireValue, error) {
	w := wireValue{Kind: uint8(v.Kind())}
	if (v.Kind() == vm.KindList || v.Kind() == vm.KindObject) && depth >= MaxDepth {
		return w, ErrTooDeep
	}
	switch v.Kind() {
	case vm.KindNil:
	case vm.KindBoolean:
		w.Bool = v.AsBool()
	case vm.KindNumber:
		w.Number = v.AsNumber()
	case vm.KindString:
		w.String = v.AsString()
	case vm.KindList:
		l := v.AsList()
		w.Items = make([]wireValue, 0, l.Len())
		var err error
		l.Each(func(i int, e vm.Value) bool {
			var ew wireValue
			if ew, err = toWire(e, depth+1); err != nil {
				err = fmt.Errorf("list element %d: %w", i, err)
				return false
			}
			w.Items = append(w.Items, ew)
			return true
		})
		if err != nil {
			return w, err
		}
	case vm.KindObject:
		o := v.AsObject()
		w.Keys = make([]wireValue, 0, o.Len())
		w.Items = make([]wireValue, 0, o.Len())
		var err error
		o.Each(func(k, val vm.Value) bool {
			var kw, vw wireValue
			if kw, err = toWire(k, depth+1); err != nil {
				err = fmt.Errorf("object key %s: %w", k, err)
				return false
			}
			if vw, err = toWire(val, depth+1); err != nil {
				err = fmt.Errorf("object member %s: %w", k, err)
				return false
			}
			w.Keys = append(w.Keys, kw)
			w.Items = append(w.Items, vw)
			return true
		})
		if err != nil {
			return w, err
		}
	case vm.KindFunction:
		return w, ErrFunction
	default:
		return w, ErrInvalidKind
	}
	return w, nil
}

func fromWire(w *wireValue) (vm.Value, error) {
	switch vm.Kind(w.Kind) {
	case vm.KindNil:
		return vm.NilValue(), nil
	case vm.KindBoolean:
		return vm.BoolValue(w.Bool), nil
	case vm.KindNumber:
		return vm.NumberValue(w.Number), nil
	case vm.KindString:
		return vm.StringValue(w.String), nil
	case vm.KindList:
		l := vm.NewList()
		for i := range w.Items {
			e, err := fromWire(&w.Items[i])
			if err != nil {
				return vm.NilValue(), fmt.Errorf("list element %d: %w", i, err)
			}
			l.Append(e)
		}
		return vm.WrapList(l), nil
	case vm.KindObject:
		if len(w.Keys) != len(w.Items) {
			return vm.NilValue(), fmt.Errorf("codec: object has %d keys and %d values", len(w.Keys), len(w.Items))
		}
		o := vm.NewObject()
		for i := range w.Keys {
			k, err := fromWire(&w.Keys[i])
			if err != nil {
				return vm.NilValue(), fmt.Errorf("object key %d: %w", i, err)
			}
			v, err := fromWire(&w.Items[i])
			if err != nil {
				return vm.NilValue(), fmt.Errorf("object member %d: %w", i, err)
			}
			o.Set(k, v)
		}
		return vm.WrapObject(o), nil
	case vm.KindFunction:
		return vm.NilValue(), ErrFunction
	default:
		return vm.NilValue(), fmt.Errorf("%w: %d", ErrInvalidKind, w.Kind)
	}
}
