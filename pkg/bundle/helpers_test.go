// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package bundle

import (
	"io"

	"github.com/jeremyhahn/imagevault/pkg/logging"
)

func loggerForTest() *logging.Logger {
	return logging.NewLogger(io.Discard, logging.FormatText, false)
}
