// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// sequences. It backs the "dtw" kernel, which is the one built-in kernel that
// accepts vectors of different lengths.
//
// DTW finds the cheapest monotone alignment between two sequences by
// warping the index axis. The recurrence kept here is:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//
// where p is the slope penalty. Only two rows are held in memory, so the
// alignment path is not recoverable; the kernel only needs the distance.
//
// Performance:
//
//   - Time:   O(N·M), or O(N·w) with a Sakoe–Chiba window w
//   - Memory: O(M)
package dtw
