// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides small error-handling helpers over log/slog: log
// an error once, at the point it is returned, rather than re-wrapping
// it with call-site text at every level it passes through.
package errs

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs err at the caller's location if it is non-nil, and returns it
// unchanged. Intended usage: return errs.Log(doSomething())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// CallerInfo describes the caller of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
