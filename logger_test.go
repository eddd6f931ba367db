package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf}
	log.Debugf("resolved %d values", 2)
	assert.Empty(t, buf.String())

	log.Debug = true
	log.Debugf("resolved %d values", 2)
	assert.Contains(t, buf.String(), "resolved 2 values")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf, Debug: true}
	log.Infof("note captured")
	log.Errorf("request failed")
	out := buf.String()
	assert.Contains(t, out, "info:")
	assert.Contains(t, out, "note captured")
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "request failed")
}
