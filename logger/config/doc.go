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

// Package config defines the configuration model for the logger package:
// an Options struct holding the stdout/stderr hook settings (OptionsStd)
// and a trace-path filter, with Clone/Merge/Options helpers to layer a
// caller's overrides onto registered defaults, and struct-tag validation
// through go-playground/validator.
//
// Options values marshal to JSON, YAML, TOML and mapstructure, so they can
// be embedded verbatim in an application's own configuration structs:
//
//	opts := config.Options{
//	    Stdout: &config.OptionsStd{EnableTrace: true},
//	}
//	if err := opts.Validate(); err != nil {
//	    // a constraint was violated
//	}
//
// DefaultConfig exposes the stock configuration as indented JSON, and
// SetDefaultConfig replaces it process-wide.
package config
