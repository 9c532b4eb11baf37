/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package hashicorp_test

import (
	"context"
	"log"
	"time"

	liblog "github.com/sabouaram/httpcore/logger"
	logcfg "github.com/sabouaram/httpcore/logger/config"
	logent "github.com/sabouaram/httpcore/logger/entry"
	logfld "github.com/sabouaram/httpcore/logger/fields"
	loglvl "github.com/sabouaram/httpcore/logger/level"
)

// mockEntry captures one logging call made through the adapter.
type mockEntry struct {
	Level   loglvl.Level
	Message string
	Args    []interface{}
}

// MockLogger records every Entry call for assertions; the options field is
// set directly by the specs exercising GetOptions-driven behavior.
type MockLogger struct {
	entries []mockEntry
	options *logcfg.Options
	level   loglvl.Level
	fields  logfld.Fields
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		entries: make([]mockEntry, 0),
		level:   loglvl.InfoLevel,
		fields:  logfld.New(context.Background()),
	}
}

func (m *MockLogger) record(lvl loglvl.Level, message string, args []interface{}) {
	m.entries = append(m.entries, mockEntry{Level: lvl, Message: message, Args: args})
}

func (m *MockLogger) Write(p []byte) (int, error) { return len(p), nil }
func (m *MockLogger) Close() error                { return nil }

func (m *MockLogger) SetLevel(lvl loglvl.Level) { m.level = lvl }
func (m *MockLogger) GetLevel() loglvl.Level    { return m.level }

func (m *MockLogger) SetIOWriterLevel(loglvl.Level)  {}
func (m *MockLogger) GetIOWriterLevel() loglvl.Level { return m.level }
func (m *MockLogger) SetIOWriterFilter(...string)    {}
func (m *MockLogger) AddIOWriterFilter(...string)    {}

func (m *MockLogger) SetOptions(opt *logcfg.Options) error { m.options = opt; return nil }
func (m *MockLogger) GetOptions() *logcfg.Options          { return m.options }

func (m *MockLogger) SetFields(field logfld.Fields) { m.fields = field }
func (m *MockLogger) GetFields() logfld.Fields      { return m.fields }

func (m *MockLogger) Clone() (liblog.Logger, error) { return m, nil }

func (m *MockLogger) GetStdLogger(loglvl.Level, int) *log.Logger { return log.Default() }
func (m *MockLogger) SetStdLogger(loglvl.Level, int)             {}

func (m *MockLogger) Debug(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.DebugLevel, message, args)
}

func (m *MockLogger) Info(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.InfoLevel, message, args)
}

func (m *MockLogger) Warning(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.WarnLevel, message, args)
}

func (m *MockLogger) Error(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.ErrorLevel, message, args)
}

func (m *MockLogger) Fatal(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.FatalLevel, message, args)
}

func (m *MockLogger) Panic(message string, _ interface{}, args ...interface{}) {
	m.record(loglvl.PanicLevel, message, args)
}

func (m *MockLogger) LogDetails(lvl loglvl.Level, message string, _ interface{}, _ []error, _ logfld.Fields, args ...interface{}) {
	m.record(lvl, message, args)
}

func (m *MockLogger) CheckError(lvlKO, _ loglvl.Level, message string, err ...error) bool {
	if len(err) > 0 && err[0] != nil {
		m.record(lvlKO, message, nil)
		return true
	}
	return false
}

func (m *MockLogger) Entry(lvl loglvl.Level, message string, args ...interface{}) logent.Entry {
	m.record(lvl, message, args)
	return logent.New(lvl)
}

func (m *MockLogger) Access(remoteAddr, _ string, _ time.Time, _ time.Duration, method, request, _ string, _ int, _ int64) logent.Entry {
	m.record(loglvl.InfoLevel, remoteAddr+" "+method+" "+request, nil)
	return logent.New(loglvl.InfoLevel)
}
