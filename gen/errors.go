// SPDX-License-Identifier: MIT

package gen

import "errors"

var (
	ErrNilHeader       = errors.New("header must not be nil")
	ErrNoLocationCodes = errors.New("at least one location code is required")
)
