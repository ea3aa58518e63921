package sgd

// Row helpers used by the kernel, selected per CPU in init. Every variant is
// element-wise and gives bit-identical results.
var (
	addRow = addRowScalar
	subRow = subRowScalar
	lanes  = 1
)

// Lanes reports the unroll width selected for this CPU.
func Lanes() int {
	return lanes
}

func addRowScalar(dst, src []Real) {
	src = src[:len(dst)]
	for j := range dst {
		dst[j] += src[j]
	}
}

func subRowScalar(dst, src []Real) {
	src = src[:len(dst)]
	for j := range dst {
		dst[j] -= src[j]
	}
}

func addRow4(dst, src []Real) {
	src = src[:len(dst)]
	j := 0
	for ; j+4 <= len(dst); j += 4 {
		d := dst[j : j+4 : j+4]
		s := src[j : j+4 : j+4]
		d[0] += s[0]
		d[1] += s[1]
		d[2] += s[2]
		d[3] += s[3]
	}
	for ; j < len(dst); j++ {
		dst[j] += src[j]
	}
}

func subRow4(dst, src []Real) {
	src = src[:len(dst)]
	j := 0
	for ; j+4 <= len(dst); j += 4 {
		d := dst[j : j+4 : j+4]
		s := src[j : j+4 : j+4]
		d[0] -= s[0]
		d[1] -= s[1]
		d[2] -= s[2]
		d[3] -= s[3]
	}
	for ; j < len(dst); j++ {
		dst[j] -= src[j]
	}
}

func addRow8(dst, src []Real) {
	src = src[:len(dst)]
	j := 0
	for ; j+8 <= len(dst); j += 8 {
		d := dst[j : j+8 : j+8]
		s := src[j : j+8 : j+8]
		d[0] += s[0]
		d[1] += s[1]
		d[2] += s[2]
		d[3] += s[3]
		d[4] += s[4]
		d[5] += s[5]
		d[6] += s[6]
		d[7] += s[7]
	}
	for ; j < len(dst); j++ {
		dst[j] += src[j]
	}
}

func subRow8(dst, src []Real) {
	src = src[:len(dst)]
	j := 0
	for ; j+8 <= len(dst); j += 8 {
		d := dst[j : j+8 : j+8]
		s := src[j : j+8 : j+8]
		d[0] -= s[0]
		d[1] -= s[1]
		d[2] -= s[2]
		d[3] -= s[3]
		d[4] -= s[4]
		d[5] -= s[5]
		d[6] -= s[6]
		d[7] -= s[7]
	}
	for ; j < len(dst); j++ {
		dst[j] -= src[j]
	}
}
