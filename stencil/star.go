package stencil

// Radius-specialized star kernels. Each body carries the same
// coefficients the weight table generator produces for its radius,
// written as exact fractions so both paths round identically. A body
// sweeps rows [i0, i1) and columns [j0, j1) of an n x n grid and
// accumulates into the destination; callers hand it tiles of the grid
// interior, so no bounds checks are needed beyond the sub-range.

// star1 applies the radius-1 star stencil to one tile
func star1(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[i*n+(j-1)]*(-1.0/2) +
				in[(i-1)*n+j]*(-1.0/2) +
				in[(i+1)*n+j]*(1.0/2) +
				in[i*n+(j+1)]*(1.0/2)
		}
	}
}

// star2 applies the radius-2 star stencil to one tile
func star2(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[i*n+(j-2)]*(-1.0/8) +
				in[i*n+(j-1)]*(-1.0/4) +
				in[(i-2)*n+j]*(-1.0/8) +
				in[(i-1)*n+j]*(-1.0/4) +
				in[(i+1)*n+j]*(1.0/4) +
				in[(i+2)*n+j]*(1.0/8) +
				in[i*n+(j+1)]*(1.0/4) +
				in[i*n+(j+2)]*(1.0/8)
		}
	}
}

// star3 applies the radius-3 star stencil to one tile
func star3(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[i*n+(j-3)]*(-1.0/18) +
				in[i*n+(j-2)]*(-1.0/12) +
				in[i*n+(j-1)]*(-1.0/6) +
				in[(i-3)*n+j]*(-1.0/18) +
				in[(i-2)*n+j]*(-1.0/12) +
				in[(i-1)*n+j]*(-1.0/6) +
				in[(i+1)*n+j]*(1.0/6) +
				in[(i+2)*n+j]*(1.0/12) +
				in[(i+3)*n+j]*(1.0/18) +
				in[i*n+(j+1)]*(1.0/6) +
				in[i*n+(j+2)]*(1.0/12) +
				in[i*n+(j+3)]*(1.0/18)
		}
	}
}

// star4 applies the radius-4 star stencil to one tile
func star4(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[i*n+(j-4)]*(-1.0/32) +
				in[i*n+(j-3)]*(-1.0/24) +
				in[i*n+(j-2)]*(-1.0/16) +
				in[i*n+(j-1)]*(-1.0/8) +
				in[(i-4)*n+j]*(-1.0/32) +
				in[(i-3)*n+j]*(-1.0/24) +
				in[(i-2)*n+j]*(-1.0/16) +
				in[(i-1)*n+j]*(-1.0/8) +
				in[(i+1)*n+j]*(1.0/8) +
				in[(i+2)*n+j]*(1.0/16) +
				in[(i+3)*n+j]*(1.0/24) +
				in[(i+4)*n+j]*(1.0/32) +
				in[i*n+(j+1)]*(1.0/8) +
				in[i*n+(j+2)]*(1.0/16) +
				in[i*n+(j+3)]*(1.0/24) +
				in[i*n+(j+4)]*(1.0/32)
		}
	}
}

// star5 applies the radius-5 star stencil to one tile
func star5(n int, in, out []float64, i0, i1, j0, j1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			out[i*n+j] += in[i*n+(j-5)]*(-1.0/50) +
				in[i*n+(j-4)]*(-1.0/40) +
				in[i*n+(j-3)]*(-1.0/30) +
				in[i*n+(j-2)]*(-1.0/20) +
				in[i*n+(j-1)]*(-1.0/10) +
				in[(i-5)*n+j]*(-1.0/50) +
				in[(i-4)*n+j]*(-1.0/40) +
				in[(i-3)*n+j]*(-1.0/30) +
				in[(i-2)*n+j]*(-1.0/20) +
				in[(i-1)*n+j]*(-1.0/10) +
				in[(i+1)*n+j]*(1.0/10) +
				in[(i+2)*n+j]*(1.0/20) +
				in[(i+3)*n+j]*(1.0/30) +
				in[(i+4)*n+j]*(1.0/40) +
				in[(i+5)*n+j]*(1.0/50) +
				in[i*n+(j+1)]*(1.0/10) +
				in[i*n+(j+2)]*(1.0/20) +
				in[i*n+(j+3)]*(1.0/30) +
				in[i*n+(j+4)]*(1.0/40) +
				in[i*n+(j+5)]*(1.0/50)
		}
	}
}
