//go:build !noasm && amd64

package sgd

import "github.com/klauspost/cpuid/v2"

func init() {
	// Check if the CPU supports AVX512 or AVX2
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		addRow, subRow, lanes = addRow8, subRow8, 8
	case cpuid.CPU.Supports(cpuid.AVX2):
		addRow, subRow, lanes = addRow4, subRow4, 4
	default:
		addRow, subRow, lanes = addRowScalar, subRowScalar, 1
	}
}
