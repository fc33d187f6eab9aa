package stencil

// Radius-specialized grid kernels, companions to the star bodies in
// star.go. The dense footprint makes these long but keeps every
// coefficient visible to the compiler for unrolling.

// grid1 applies the radius-1 grid stencil to one tile
func grid1(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[(i-1)*n+(j-1)]*(-1.0/4) +
				in[i*n+(j-1)]*(-1.0/4) +
				in[(i-1)*n+j]*(-1.0/4) +
				in[(i+1)*n+j]*(1.0/4) +
				in[i*n+(j+1)]*(1.0/4) +
				in[(i+1)*n+(j+1)]*(1.0/4)
		}
	}
}

// grid2 applies the radius-2 grid stencil to one tile
func grid2(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[(i-2)*n+(j-2)]*(-1.0/16) +
				in[(i-1)*n+(j-2)]*(-1.0/48) +
				in[i*n+(j-2)]*(-1.0/48) +
				in[(i+1)*n+(j-2)]*(-1.0/48) +
				in[(i-2)*n+(j-1)]*(-1.0/48) +
				in[(i-1)*n+(j-1)]*(-1.0/8) +
				in[i*n+(j-1)]*(-1.0/8) +
				in[(i+2)*n+(j-1)]*(1.0/48) +
				in[(i-2)*n+j]*(-1.0/48) +
				in[(i-1)*n+j]*(-1.0/8) +
				in[(i+1)*n+j]*(1.0/8) +
				in[(i+2)*n+j]*(1.0/48) +
				in[(i-2)*n+(j+1)]*(-1.0/48) +
				in[i*n+(j+1)]*(1.0/8) +
				in[(i+1)*n+(j+1)]*(1.0/8) +
				in[(i+2)*n+(j+1)]*(1.0/48) +
				in[(i-1)*n+(j+2)]*(1.0/48) +
				in[i*n+(j+2)]*(1.0/48) +
				in[(i+1)*n+(j+2)]*(1.0/48) +
				in[(i+2)*n+(j+2)]*(1.0/16)
		}
	}
}

// grid3 applies the radius-3 grid stencil to one tile
func grid3(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[(i-3)*n+(j-3)]*(-1.0/36) +
				in[(i-2)*n+(j-3)]*(-1.0/180) +
				in[(i-1)*n+(j-3)]*(-1.0/180) +
				in[i*n+(j-3)]*(-1.0/180) +
				in[(i+1)*n+(j-3)]*(-1.0/180) +
				in[(i+2)*n+(j-3)]*(-1.0/180) +
				in[(i-3)*n+(j-2)]*(-1.0/180) +
				in[(i-2)*n+(j-2)]*(-1.0/24) +
				in[(i-1)*n+(j-2)]*(-1.0/72) +
				in[i*n+(j-2)]*(-1.0/72) +
				in[(i+1)*n+(j-2)]*(-1.0/72) +
				in[(i+3)*n+(j-2)]*(1.0/180) +
				in[(i-3)*n+(j-1)]*(-1.0/180) +
				in[(i-2)*n+(j-1)]*(-1.0/72) +
				in[(i-1)*n+(j-1)]*(-1.0/12) +
				in[i*n+(j-1)]*(-1.0/12) +
				in[(i+2)*n+(j-1)]*(1.0/72) +
				in[(i+3)*n+(j-1)]*(1.0/180) +
				in[(i-3)*n+j]*(-1.0/180) +
				in[(i-2)*n+j]*(-1.0/72) +
				in[(i-1)*n+j]*(-1.0/12) +
				in[(i+1)*n+j]*(1.0/12) +
				in[(i+2)*n+j]*(1.0/72) +
				in[(i+3)*n+j]*(1.0/180) +
				in[(i-3)*n+(j+1)]*(-1.0/180) +
				in[(i-2)*n+(j+1)]*(-1.0/72) +
				in[i*n+(j+1)]*(1.0/12) +
				in[(i+1)*n+(j+1)]*(1.0/12) +
				in[(i+2)*n+(j+1)]*(1.0/72) +
				in[(i+3)*n+(j+1)]*(1.0/180) +
				in[(i-3)*n+(j+2)]*(-1.0/180) +
				in[(i-1)*n+(j+2)]*(1.0/72) +
				in[i*n+(j+2)]*(1.0/72) +
				in[(i+1)*n+(j+2)]*(1.0/72) +
				in[(i+2)*n+(j+2)]*(1.0/24) +
				in[(i+3)*n+(j+2)]*(1.0/180) +
				in[(i-2)*n+(j+3)]*(1.0/180) +
				in[(i-1)*n+(j+3)]*(1.0/180) +
				in[i*n+(j+3)]*(1.0/180) +
				in[(i+1)*n+(j+3)]*(1.0/180) +
				in[(i+2)*n+(j+3)]*(1.0/180) +
				in[(i+3)*n+(j+3)]*(1.0/36)
		}
	}
}

// grid4 applies the radius-4 grid stencil to one tile
func grid4(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[(i-4)*n+(j-4)]*(-1.0/64) +
				in[(i-3)*n+(j-4)]*(-1.0/448) +
				in[(i-2)*n+(j-4)]*(-1.0/448) +
				in[(i-1)*n+(j-4)]*(-1.0/448) +
				in[i*n+(j-4)]*(-1.0/448) +
				in[(i+1)*n+(j-4)]*(-1.0/448) +
				in[(i+2)*n+(j-4)]*(-1.0/448) +
				in[(i+3)*n+(j-4)]*(-1.0/448) +
				in[(i-4)*n+(j-3)]*(-1.0/448) +
				in[(i-3)*n+(j-3)]*(-1.0/48) +
				in[(i-2)*n+(j-3)]*(-1.0/240) +
				in[(i-1)*n+(j-3)]*(-1.0/240) +
				in[i*n+(j-3)]*(-1.0/240) +
				in[(i+1)*n+(j-3)]*(-1.0/240) +
				in[(i+2)*n+(j-3)]*(-1.0/240) +
				in[(i+4)*n+(j-3)]*(1.0/448) +
				in[(i-4)*n+(j-2)]*(-1.0/448) +
				in[(i-3)*n+(j-2)]*(-1.0/240) +
				in[(i-2)*n+(j-2)]*(-1.0/32) +
				in[(i-1)*n+(j-2)]*(-1.0/96) +
				in[i*n+(j-2)]*(-1.0/96) +
				in[(i+1)*n+(j-2)]*(-1.0/96) +
				in[(i+3)*n+(j-2)]*(1.0/240) +
				in[(i+4)*n+(j-2)]*(1.0/448) +
				in[(i-4)*n+(j-1)]*(-1.0/448) +
				in[(i-3)*n+(j-1)]*(-1.0/240) +
				in[(i-2)*n+(j-1)]*(-1.0/96) +
				in[(i-1)*n+(j-1)]*(-1.0/16) +
				in[i*n+(j-1)]*(-1.0/16) +
				in[(i+2)*n+(j-1)]*(1.0/96) +
				in[(i+3)*n+(j-1)]*(1.0/240) +
				in[(i+4)*n+(j-1)]*(1.0/448) +
				in[(i-4)*n+j]*(-1.0/448) +
				in[(i-3)*n+j]*(-1.0/240) +
				in[(i-2)*n+j]*(-1.0/96) +
				in[(i-1)*n+j]*(-1.0/16) +
				in[(i+1)*n+j]*(1.0/16) +
				in[(i+2)*n+j]*(1.0/96) +
				in[(i+3)*n+j]*(1.0/240) +
				in[(i+4)*n+j]*(1.0/448) +
				in[(i-4)*n+(j+1)]*(-1.0/448) +
				in[(i-3)*n+(j+1)]*(-1.0/240) +
				in[(i-2)*n+(j+1)]*(-1.0/96) +
				in[i*n+(j+1)]*(1.0/16) +
				in[(i+1)*n+(j+1)]*(1.0/16) +
				in[(i+2)*n+(j+1)]*(1.0/96) +
				in[(i+3)*n+(j+1)]*(1.0/240) +
				in[(i+4)*n+(j+1)]*(1.0/448) +
				in[(i-4)*n+(j+2)]*(-1.0/448) +
				in[(i-3)*n+(j+2)]*(-1.0/240) +
				in[(i-1)*n+(j+2)]*(1.0/96) +
				in[i*n+(j+2)]*(1.0/96) +
				in[(i+1)*n+(j+2)]*(1.0/96) +
				in[(i+2)*n+(j+2)]*(1.0/32) +
				in[(i+3)*n+(j+2)]*(1.0/240) +
				in[(i+4)*n+(j+2)]*(1.0/448) +
				in[(i-4)*n+(j+3)]*(-1.0/448) +
				in[(i-2)*n+(j+3)]*(1.0/240) +
				in[(i-1)*n+(j+3)]*(1.0/240) +
				in[i*n+(j+3)]*(1.0/240) +
				in[(i+1)*n+(j+3)]*(1.0/240) +
				in[(i+2)*n+(j+3)]*(1.0/240) +
				in[(i+3)*n+(j+3)]*(1.0/48) +
				in[(i+4)*n+(j+3)]*(1.0/448) +
				in[(i-3)*n+(j+4)]*(1.0/448) +
				in[(i-2)*n+(j+4)]*(1.0/448) +
				in[(i-1)*n+(j+4)]*(1.0/448) +
				in[i*n+(j+4)]*(1.0/448) +
				in[(i+1)*n+(j+4)]*(1.0/448) +
				in[(i+2)*n+(j+4)]*(1.0/448) +
				in[(i+3)*n+(j+4)]*(1.0/448) +
				in[(i+4)*n+(j+4)]*(1.0/64)
		}
	}
}

// grid5 applies the radius-5 grid stencil to one tile
func grid5(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[(i-5)*n+(j-5)]*(-1.0/100) +
				in[(i-4)*n+(j-5)]*(-1.0/900) +
				in[(i-3)*n+(j-5)]*(-1.0/900) +
				in[(i-2)*n+(j-5)]*(-1.0/900) +
				in[(i-1)*n+(j-5)]*(-1.0/900) +
				in[i*n+(j-5)]*(-1.0/900) +
				in[(i+1)*n+(j-5)]*(-1.0/900) +
				in[(i+2)*n+(j-5)]*(-1.0/900) +
				in[(i+3)*n+(j-5)]*(-1.0/900) +
				in[(i+4)*n+(j-5)]*(-1.0/900) +
				in[(i-5)*n+(j-4)]*(-1.0/900) +
				in[(i-4)*n+(j-4)]*(-1.0/80) +
				in[(i-3)*n+(j-4)]*(-1.0/560) +
				in[(i-2)*n+(j-4)]*(-1.0/560) +
				in[(i-1)*n+(j-4)]*(-1.0/560) +
				in[i*n+(j-4)]*(-1.0/560) +
				in[(i+1)*n+(j-4)]*(-1.0/560) +
				in[(i+2)*n+(j-4)]*(-1.0/560) +
				in[(i+3)*n+(j-4)]*(-1.0/560) +
				in[(i+5)*n+(j-4)]*(1.0/900) +
				in[(i-5)*n+(j-3)]*(-1.0/900) +
				in[(i-4)*n+(j-3)]*(-1.0/560) +
				in[(i-3)*n+(j-3)]*(-1.0/60) +
				in[(i-2)*n+(j-3)]*(-1.0/300) +
				in[(i-1)*n+(j-3)]*(-1.0/300) +
				in[i*n+(j-3)]*(-1.0/300) +
				in[(i+1)*n+(j-3)]*(-1.0/300) +
				in[(i+2)*n+(j-3)]*(-1.0/300) +
				in[(i+4)*n+(j-3)]*(1.0/560) +
				in[(i+5)*n+(j-3)]*(1.0/900) +
				in[(i-5)*n+(j-2)]*(-1.0/900) +
				in[(i-4)*n+(j-2)]*(-1.0/560) +
				in[(i-3)*n+(j-2)]*(-1.0/300) +
				in[(i-2)*n+(j-2)]*(-1.0/40) +
				in[(i-1)*n+(j-2)]*(-1.0/120) +
				in[i*n+(j-2)]*(-1.0/120) +
				in[(i+1)*n+(j-2)]*(-1.0/120) +
				in[(i+3)*n+(j-2)]*(1.0/300) +
				in[(i+4)*n+(j-2)]*(1.0/560) +
				in[(i+5)*n+(j-2)]*(1.0/900) +
				in[(i-5)*n+(j-1)]*(-1.0/900) +
				in[(i-4)*n+(j-1)]*(-1.0/560) +
				in[(i-3)*n+(j-1)]*(-1.0/300) +
				in[(i-2)*n+(j-1)]*(-1.0/120) +
				in[(i-1)*n+(j-1)]*(-1.0/20) +
				in[i*n+(j-1)]*(-1.0/20) +
				in[(i+2)*n+(j-1)]*(1.0/120) +
				in[(i+3)*n+(j-1)]*(1.0/300) +
				in[(i+4)*n+(j-1)]*(1.0/560) +
				in[(i+5)*n+(j-1)]*(1.0/900) +
				in[(i-5)*n+j]*(-1.0/900) +
				in[(i-4)*n+j]*(-1.0/560) +
				in[(i-3)*n+j]*(-1.0/300) +
				in[(i-2)*n+j]*(-1.0/120) +
				in[(i-1)*n+j]*(-1.0/20) +
				in[(i+1)*n+j]*(1.0/20) +
				in[(i+2)*n+j]*(1.0/120) +
				in[(i+3)*n+j]*(1.0/300) +
				in[(i+4)*n+j]*(1.0/560) +
				in[(i+5)*n+j]*(1.0/900) +
				in[(i-5)*n+(j+1)]*(-1.0/900) +
				in[(i-4)*n+(j+1)]*(-1.0/560) +
				in[(i-3)*n+(j+1)]*(-1.0/300) +
				in[(i-2)*n+(j+1)]*(-1.0/120) +
				in[i*n+(j+1)]*(1.0/20) +
				in[(i+1)*n+(j+1)]*(1.0/20) +
				in[(i+2)*n+(j+1)]*(1.0/120) +
				in[(i+3)*n+(j+1)]*(1.0/300) +
				in[(i+4)*n+(j+1)]*(1.0/560) +
				in[(i+5)*n+(j+1)]*(1.0/900) +
				in[(i-5)*n+(j+2)]*(-1.0/900) +
				in[(i-4)*n+(j+2)]*(-1.0/560) +
				in[(i-3)*n+(j+2)]*(-1.0/300) +
				in[(i-1)*n+(j+2)]*(1.0/120) +
				in[i*n+(j+2)]*(1.0/120) +
				in[(i+1)*n+(j+2)]*(1.0/120) +
				in[(i+2)*n+(j+2)]*(1.0/40) +
				in[(i+3)*n+(j+2)]*(1.0/300) +
				in[(i+4)*n+(j+2)]*(1.0/560) +
				in[(i+5)*n+(j+2)]*(1.0/900) +
				in[(i-5)*n+(j+3)]*(-1.0/900) +
				in[(i-4)*n+(j+3)]*(-1.0/560) +
				in[(i-2)*n+(j+3)]*(1.0/300) +
				in[(i-1)*n+(j+3)]*(1.0/300) +
				in[i*n+(j+3)]*(1.0/300) +
				in[(i+1)*n+(j+3)]*(1.0/300) +
				in[(i+2)*n+(j+3)]*(1.0/300) +
				in[(i+3)*n+(j+3)]*(1.0/60) +
				in[(i+4)*n+(j+3)]*(1.0/560) +
				in[(i+5)*n+(j+3)]*(1.0/900) +
				in[(i-5)*n+(j+4)]*(-1.0/900) +
				in[(i-3)*n+(j+4)]*(1.0/560) +
				in[(i-2)*n+(j+4)]*(1.0/560) +
				in[(i-1)*n+(j+4)]*(1.0/560) +
				in[i*n+(j+4)]*(1.0/560) +
				in[(i+1)*n+(j+4)]*(1.0/560) +
				in[(i+2)*n+(j+4)]*(1.0/560) +
				in[(i+3)*n+(j+4)]*(1.0/560) +
				in[(i+4)*n+(j+4)]*(1.0/80) +
				in[(i+5)*n+(j+4)]*(1.0/900) +
				in[(i-4)*n+(j+5)]*(1.0/900) +
				in[(i-3)*n+(j+5)]*(1.0/900) +
				in[(i-2)*n+(j+5)]*(1.0/900) +
				in[(i-1)*n+(j+5)]*(1.0/900) +
				in[i*n+(j+5)]*(1.0/900) +
				in[(i+1)*n+(j+5)]*(1.0/900) +
				in[(i+2)*n+(j+5)]*(1.0/900) +
				in[(i+3)*n+(j+5)]*(1.0/900) +
				in[(i+4)*n+(j+5)]*(1.0/900) +
				in[(i+5)*n+(j+5)]*(1.0/100)
		}
	}
}
