// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build thssort_checked

package ths

// checkedInsertion selects the bounds-checked insertion sort for the short
// ranges left over by Sort.
const checkedInsertion = true
