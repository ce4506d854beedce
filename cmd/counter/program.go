package main

import "github.com/linx-lang/linx/vm"

// This file is the generated-code shape of:
//
//	fn makeCounter(initial) {
//		let n = initial
//		fn counter() {
//			n = n + 1
//			return n
//		}
//		return counter
//	}
//
//	let c1 = makeCounter(12)
//	let c2 = makeCounter(34)
//	print(c1())
//	print(c1())
//	print(c2())
//	print(c1())
//
// Nested functions are lifted to top-level entries; variables they capture
// live in cells. The printed values are also collected in the results
// global.

func counterDef(env vm.Env, _ []vm.Value) vm.Value {
	n := env.At(0)
	vm.Assign(n, vm.Add(n.Get(), vm.NumberValue(1)))
	return n.Get()
}

func makeCounterDef(_ vm.Env, args []vm.Value) vm.Value {
	n := vm.NewCell(vm.Arg(args, 0))
	return vm.FunctionValue(counterDef, n)
}

// runProgram executes the program against rt and returns the printed
// values as a list.
func runProgram(rt *vm.Runtime) vm.Value {
	printFn := rt.Builtin("print")

	makeCounter := rt.Global("makeCounter")
	vm.Assign(makeCounter, vm.FunctionValue(makeCounterDef))

	c1 := rt.Global("c1")
	vm.Assign(c1, vm.Call(makeCounter.Get(), vm.NumberValue(12)))
	c2 := rt.Global("c2")
	vm.Assign(c2, vm.Call(makeCounter.Get(), vm.NumberValue(34)))

	results := rt.Global("results")
	vm.Assign(results, vm.ListValue())

	for _, c := range []*vm.Cell{c1, c1, c2, c1} {
		v := vm.Call(c.Get())
		results.Get().AsList().Append(v)
		vm.Call(printFn, v)
	}
	return results.Get()
}
