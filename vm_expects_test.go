package main

// @generated from vm_test.go

//go:generate go run scripts/gen_vm_expects.go -- vm_test.go vm_expects_test.go

import "time"

func withVMOptions(opts ...VMOption) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withOptions(opts...)
	}
}

func withVMSource(source string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withSource(source)
	}
}

func withVMCode(code string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withCode(code)
	}
}

func withVMPC(pc int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withPC(pc)
	}
}

func withVMStack(values ...int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withStack(values...)
	}
}

func withVMInput(input string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withInput(input)
	}
}

func withVMTimeout(timeout time.Duration) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withTimeout(timeout)
	}
}

func expectVMError(err error) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectError(err)
	}
}

func expectVMPC(pc int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectPC(pc)
	}
}

func expectVMStack(values ...int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectStack(values...)
	}
}

func expectVMOutput(output string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectOutput(output)
	}
}

func expectVMDump(dump string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectDump(dump)
	}
}
