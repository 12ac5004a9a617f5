// SPDX-License-Identifier: MIT
// Package: deckentropy/internal/cmd/deckentropy

package deckentropy

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the command's text logger at the named level.
func NewLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}
