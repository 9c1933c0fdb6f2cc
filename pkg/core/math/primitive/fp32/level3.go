package fp32

// Gemm_NN computes: C = alpha*A*B + beta*C (neither transposed)
// This is BLAS GEMM_NN operation
// A: M × K matrix (row-major, ldA ≥ K)
// B: K × N matrix (row-major, ldB ≥ N)
// C: M × N matrix (row-major, ldC ≥ N)
// Result: C = alpha*A*B + beta*C
func Gemm_NN(c, a, b []float32, ldC, ldA, ldB, M, N, K int, alpha, beta float32) {
	if M == 0 || N == 0 || K == 0 {
		return
	}

	// Scale C by beta first
	if beta != 1.0 {
		if beta == 0.0 {
			for i := 0; i < M; i++ {
				pc := i * ldC
				for j := 0; j < N; j++ {
					c[pc+j] = 0
				}
			}
		} else {
			for i := 0; i < M; i++ {
				pc := i * ldC
				for j := 0; j < N; j++ {
					c[pc+j] *= beta
				}
			}
		}
	}

	// If alpha is zero, we're done
	if alpha == 0.0 {
		return
	}

	// Compute C = alpha*A*B + beta*C
	// C[i][j] = alpha * sum_k(A[i][k] * B[k][j]) + beta * C[i][j]
	pa := 0
	pc := 0
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			sum := float32(0.0)
			pb := 0

			// Compute dot product of row i of A with column j of B
			for k := 0; k < K; k++ {
				sum += a[pa+k] * b[pb+j]
				pb += ldB
			}

			c[pc+j] += alpha * sum
		}
		pa += ldA
		pc += ldC
	}
}

// Gemm_NT computes: C = alpha*A*B^T + beta*C (B transposed)
// This is BLAS GEMM_NT operation
// A: M × K matrix (row-major, ldA ≥ K)
// B: N × K matrix (row-major, ldB ≥ K), but we treat it as B^T which is K × N
// C: M × N matrix (row-major, ldC ≥ N)
// Result: C = alpha*A*B^T + beta*C
func Gemm_NT(c, a, b []float32, ldC, ldA, ldB, M, N, K int, alpha, beta float32) {
	if M == 0 || N == 0 || K == 0 {
		return
	}

	// Scale C by beta first
	if beta != 1.0 {
		if beta == 0.0 {
			for i := 0; i < M; i++ {
				pc := i * ldC
				for j := 0; j < N; j++ {
					c[pc+j] = 0
				}
			}
		} else {
			for i := 0; i < M; i++ {
				pc := i * ldC
				for j := 0; j < N; j++ {
					c[pc+j] *= beta
				}
			}
		}
	}

	// If alpha is zero, we're done
	if alpha == 0.0 {
		return
	}

	// Compute C = alpha*A*B^T + beta*C
	// C[i][j] = alpha * sum_k(A[i][k] * B^T[k][j]) + beta * C[i][j]
	// B^T[k][j] = B[j][k] = b[j*ldB + k]
	pa := 0
	pc := 0
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			sum := float32(0.0)
			pbRow := j * ldB

			// Compute dot product of row i of A with row j of B (which is column j of B^T)
			for k := 0; k < K; k++ {
				sum += a[pa+k] * b[pbRow+k]
			}

			c[pc+j] += alpha * sum
		}
		pa += ldA
		pc += ldC
	}
}

