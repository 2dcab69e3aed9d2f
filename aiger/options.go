// SPDX-License-Identifier: MIT
// Package: aigkit/aiger
//
// options.go — functional options for ReadAIGER/WriteAIGER, mirroring the
// teacher's builder.GraphOption convention. The only option today wires a
// logrus.FieldLogger for the I/O-boundary logging concern; decode/encode
// stay silent by default.
package aiger

import "github.com/sirupsen/logrus"

// ReadOption configures a ReadAIGER call.
type ReadOption func(*readConfig)

// WriteOption configures a WriteAIGER call.
type WriteOption func(*writeConfig)

type readConfig struct {
	logger logrus.FieldLogger
}

type writeConfig struct {
	logger logrus.FieldLogger
}

// WithReadLogger installs a logrus.FieldLogger that receives structured
// progress entries while decoding (header counts, symbol-table lines
// skipped, etc). The default is silent.
func WithReadLogger(l logrus.FieldLogger) ReadOption {
	return func(c *readConfig) { c.logger = l }
}

// WithWriteLogger installs a logrus.FieldLogger for WriteAIGER, analogous
// to WithReadLogger.
func WithWriteLogger(l logrus.FieldLogger) WriteOption {
	return func(c *writeConfig) { c.logger = l }
}

func newReadConfig(opts []ReadOption) *readConfig {
	c := &readConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newWriteConfig(opts []WriteOption) *writeConfig {
	c := &writeConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *readConfig) log(msg string, kv ...interface{}) {
	if c.logger == nil {
		return
	}
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = kv[i+1]
		}
	}
	c.logger.WithFields(fields).Debug(msg)
}

func (c *writeConfig) log(msg string, kv ...interface{}) {
	if c.logger == nil {
		return
	}
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = kv[i+1]
		}
	}
	c.logger.WithFields(fields).Debug(msg)
}
