// SPDX-License-Identifier: MIT
//
// Package obslog wires a single logrus.FieldLogger for aigkit's ambient
// logging concern: structured, leveled entries emitted only at I/O
// boundaries (AIGER/marshal decode and encode, the CLI), never inside
// the pure graph/truth-table core.
package obslog

import "github.com/sirupsen/logrus"

// New returns a text-formatted logrus.Logger at level, matching the
// plain stderr logger the example corpus's CLIs construct directly
// rather than routing through a shared config object.
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
